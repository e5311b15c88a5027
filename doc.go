// Package inventory implements the in-memory stock ledger behind the
// stockdesk command-line tool. It is designed for a single inventory desk:
// one process, one authenticated session, one shared catalog.
//
// The core functionalities include:
//   - Product Catalog: the set of products keyed by identifier, with
//     identifier uniqueness, validated mutations and derived facts such as
//     low-stock status and line value.
//   - Transaction Ledger: an ordered, append-only record of every stock
//     movement, with monotonically increasing transaction ids that are never
//     reused. The catalog is the ledger's sole writer: each quantity change
//     appends exactly one record, so the history always reconciles with the
//     quantities on hand.
//   - Reporting: aggregates (item count, inventory value, low-stock subset)
//     computed fresh from current state, and a CSV projection of the catalog.
//   - Capabilities: an injectable clock for deterministic timestamps and a
//     pluggable credential verifier consumed by the login flow.
//
// Nothing here persists, listens or logs. Errors are typed, local and
// recoverable; translating them into prompts and messages is the caller's
// business.
package inventory
