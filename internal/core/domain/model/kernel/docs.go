// Package kernel provides the value objects shared by every aggregate of the delivery domain.
//
// The package includes:
//   - UUID: generation and parsing of entity identifiers
//   - Money: an exact, non-negative decimal amount with two fraction digits
//
// Both types are immutable and safe for concurrent use.
package kernel
