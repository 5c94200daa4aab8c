// Package services holds domain logic that spans several aggregates.
//
// The package includes:
//   - RatingAggregator: turns every rating a user received into their public
//     RatingSummary
package services
