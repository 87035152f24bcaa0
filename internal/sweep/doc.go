// Package sweep fans independent evaluations of one plant out over a bounded
// set of workers and hands the results back in input order.
//
// Run owns the scheduling only. What an evaluation does and how its output
// is written belong to the caller.
package sweep
