// Package diagnostic provides structured errors, warnings and notes produced
// while validating mapping definitions.
//
// Key capabilities:
//   - Per-group, per-field findings with stable codes
//   - "did you mean" suggestions for unknown names
//   - Collecting every problem before failing, combined into one error
package diagnostic
