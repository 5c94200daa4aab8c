// Package kernel provides the identifiers shared by every aggregate of the
// marketplace: UUID for orders and reviews, UserID for buyers and sellers.
// Both are immutable value objects whose zero values fail Validate.
package kernel
