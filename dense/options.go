// SPDX-License-Identifier: MIT

// Package dense: numeric policy configuration for constructors.
// This file defines:
//   - documented defaults (constants),
//   - Option / options (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults first.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: option state is unexported; public constructors consume ...Option.
package dense

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion,
	// Set and Apply. Kept ON so that NaN/Inf never enters a matrix silently;
	// disable per-instance for controlled ingestion of non-finite data.
	DefaultValidateNaNInf = true

	// DefaultPrintVerb is the fixed-width verb used by Dense.String for each
	// element. Stable across releases so snapshot-style tests keep passing.
	DefaultPrintVerb = "% 10.4f"
)

// Option mutates constructor options. Options are applied in call order after
// defaults, so the last writer wins.
type Option func(*options)

// options carries the per-instance numeric policy resolved at construction.
type options struct {
	validateNaNInf bool // reject NaN/±Inf in Set/Apply when true
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation, allowing NaN/±Inf
// to be stored. Intended for controlled ingestion paths and tests.
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

// gatherOptions applies defaults then the caller's options, in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
