// Package schema validates decoded API payloads against their declared shape and
// renders the failures as human readable, per-field diagnostics.
package schema
