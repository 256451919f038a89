// Package kernel provides the value objects shared by the work order model.
//
// The package includes:
//   - UUID: the work order identifier; its zero value is invalid
//   - Date: a calendar day used for visit dates and audit-trail entries
//
// Both are immutable and safe for concurrent use.
package kernel
