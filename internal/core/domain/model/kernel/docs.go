// Package kernel provides the primitives shared by every ledger record.
//
// The package includes:
//   - Kind: the record type, which also owns the storage key layout ("asset:a1")
//   - Date: a calendar date value object exchanged as "YYYY-MM-DD"
//   - Clock: the source of "today" for time-dependent order rules
package kernel
