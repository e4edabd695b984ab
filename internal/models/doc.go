// Package models defines the core domain models for the bill tracker.
//
// # Models
//
//   - Bill: a payable bill with a due date, optional recurrence and an
//     optional weak link to an Account
//   - Account: a payment account (checking, savings, credit, other)
//   - Settings: notification preferences
//   - Document: the aggregate root holding all of the above
//   - Date: a civil calendar date (no time-of-day, no timezone)
//
// # Design Principles
//
//  1. **Single document**: the whole state is one Document, loaded and
//     rewritten as a unit. Small personal datasets make this cheap and it
//     keeps persistence to a single contract.
//  2. **Weak references**: Bill.AccountID records an association without
//     ownership. Deleting an account unlinks bills, never deletes them.
//  3. **Civil dates**: due-date logic is date-only. Date strips
//     time-of-day so "days until due" is exact everywhere.
//  4. **Explicit invariants**: Paid <=> PaidDate != nil, enforced by the
//     service layer rather than scattered across callers.
package models
