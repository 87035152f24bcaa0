// Package inputs validates model parameters and carries the error taxonomy
// shared by every calculator.
//
// Validation helpers return *Error values. Callers collect them with Collect,
// which joins them (errors.Join) so a single call reports every bad field.
// Every *Error matches ErrInvalid under errors.Is.
package inputs

import (
	"errors"
	"fmt"
	"math"
)

// Code is a machine-readable validation/infeasibility code.
type Code string

const (
	CodeNotPositive   Code = "NOT_POSITIVE"
	CodeNegative      Code = "NEGATIVE"
	CodeOutOfRange    Code = "OUT_OF_RANGE"
	CodeNotFinite     Code = "NOT_FINITE"
	CodeResidenceTime Code = "RESIDENCE_TIME"
	CodeThermodynamic Code = "THERMODYNAMIC"
	CodeNoConvergence Code = "NO_CONVERGENCE"
)

// ErrInvalid is matched by every *Error.
var ErrInvalid = errors.New("invalid model input")

// Error describes one rejected parameter or an infeasible operating point.
type Error struct {
	Model  string
	Field  string
	Code   Code
	Value  float64
	Reason string
}

func (e *Error) Error() string {
	prefix := e.Model
	if e.Field != "" {
		if prefix != "" {
			prefix += ": "
		}
		prefix += e.Field
	}
	if prefix == "" {
		return e.Reason
	}
	return prefix + ": " + e.Reason
}

func (e *Error) Is(target error) bool { return target == ErrInvalid }

// CodeOf returns the Code of the first *Error found in err's tree, or "".
func CodeOf(err error) Code {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}

// Checker accumulates validation failures for one model.
type Checker struct {
	model string
	errs  []error
}

// For starts a Checker for the named model.
func For(model string) *Checker { return &Checker{model: model} }

func (c *Checker) add(field string, code Code, v float64, format string, a ...any) {
	c.errs = append(c.errs, &Error{
		Model:  c.model,
		Field:  field,
		Code:   code,
		Value:  v,
		Reason: fmt.Sprintf(format, a...),
	})
}

func (c *Checker) finite(field string, v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		c.add(field, CodeNotFinite, v, "must be a finite number, got %v", v)
		return false
	}
	return true
}

// Positive requires v > 0.
func (c *Checker) Positive(field string, v float64) *Checker {
	if c.finite(field, v) && v <= 0 {
		c.add(field, CodeNotPositive, v, "must be > 0, got %g", v)
	}
	return c
}

// NonNegative requires v >= 0.
func (c *Checker) NonNegative(field string, v float64) *Checker {
	if c.finite(field, v) && v < 0 {
		c.add(field, CodeNegative, v, "must be >= 0, got %g", v)
	}
	return c
}

// Fraction requires 0 < v <= 1.
func (c *Checker) Fraction(field string, v float64) *Checker {
	if c.finite(field, v) && (v <= 0 || v > 1) {
		c.add(field, CodeOutOfRange, v, "must be in (0, 1], got %g", v)
	}
	return c
}

// Open requires lo < v < hi.
func (c *Checker) Open(field string, v, lo, hi float64) *Checker {
	if c.finite(field, v) && (v <= lo || v >= hi) {
		c.add(field, CodeOutOfRange, v, "must be in (%g, %g), got %g", lo, hi, v)
	}
	return c
}

// Closed requires lo <= v <= hi.
func (c *Checker) Closed(field string, v, lo, hi float64) *Checker {
	if c.finite(field, v) && (v < lo || v > hi) {
		c.add(field, CodeOutOfRange, v, "must be in [%g, %g], got %g", lo, hi, v)
	}
	return c
}

// Greater requires v > other, where other is named for the message.
func (c *Checker) Greater(field string, v float64, otherName string, other float64) *Checker {
	if c.finite(field, v) && v <= other {
		c.add(field, CodeOutOfRange, v, "must be greater than %s (%g), got %g", otherName, other, v)
	}
	return c
}

// Err returns the joined failures, or nil.
func (c *Checker) Err() error { return errors.Join(c.errs...) }

// Infeasible builds a single evaluation-time error (not tied to one field).
func Infeasible(model string, code Code, format string, a ...any) error {
	return &Error{Model: model, Code: code, Reason: fmt.Sprintf(format, a...)}
}
