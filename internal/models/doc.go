// Package models defines the core domain models for evensplit.
//
// # Models
//
//   - User: registered account; its username is the participant id used in
//     expenses and balances
//   - Project: a group of users sharing expenses, joined by invite code
//   - Expense: an amount paid by one participant on behalf of a set of
//     participants, split equally between them
//   - ProjectSnapshot: a consistent read of one project's roster and expenses,
//     the input to a settlement computation
//
// # Design Principles
//
//  1. Amounts are money.Cents; decimals exist only at the API boundary
//  2. Relationships use ID strings instead of pointers
//  3. Timestamps are Unix seconds
package models
