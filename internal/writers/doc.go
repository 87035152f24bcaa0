// Package writers turns model reports into serialized outputs.
//
// Writers own all presentation knowledge (text blocks, pretty panels, TSV,
// JSON/JSONL/YAML). Models stay domain-only. JSON, JSONL and YAML go through
// pkg/api (v1) for a stable wire format.
package writers
