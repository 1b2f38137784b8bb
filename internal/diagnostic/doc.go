// Package diagnostic collects errors, warnings and notes produced while
// loading packages and building symbol names.
//
// Key capabilities:
//   - Severity-tagged diagnostics attached to a package and object
//   - A concurrency-safe Tracker whose SawErrors answers the
//     "has an error already been reported" question for the encoder
package diagnostic
