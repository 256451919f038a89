// Package workorder models a furniture delivery work order and its lifecycle.
//
// The package includes:
//   - WorkOrder: the aggregate (tracking number, request category, status,
//     visit date, append-only driver notes, cancellation and completion data)
//   - Category and Status: closed enumerations
//   - the category mapper, which turns a category into its active and completed
//     status variants
//   - guards: pure predicates deciding whether an action is legal from a status
//   - Engine: computes the Patch an Action produces, or a guard violation
//
// State transitions:
//
//	Received ──Dispatch──> Dispatched ──Load──> InDelivery | InCollection | InProcessing
//	    │                      │                          │
//	    └──────Load────────────┼──────────────────────────┤
//	                           │                          │
//	 any non-terminal ──Complete──> CompletedStandard | CompletedCollection | CompletedRemediation
//	 any non-terminal ──Cancel────> Cancelled
//	 any non-terminal ──Postpone──> Postponed ──Dispatch/Load──> (normal flow)
//
// Cancelled and every Completed* status are terminal: no action changes them.
//
// The engine performs no I/O and keeps no state. Persisting a Patch safely
// is the caller's job: the write must be conditional on the status and
// version the patch was computed from.
package workorder
