package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingAggregator_Aggregate(t *testing.T) {
	seller, err := kernel.NewUserID("seller-1")
	require.NoError(t, err)
	aggregator := services.NewRatingAggregator()

	testCases := []struct {
		name    string
		ratings []review.Rating
		average string
	}{
		{name: "single rating", ratings: []review.Rating{4}, average: "4"},
		{name: "rounds down", ratings: []review.Rating{5, 4, 4}, average: "4.3"},
		{name: "rounds half up", ratings: []review.Rating{5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, average: "4.2"},
		{name: "rounds up", ratings: []review.Rating{5, 5, 4}, average: "4.7"},
		{name: "mixed", ratings: []review.Rating{1, 2, 3, 4, 5}, average: "3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := aggregator.Aggregate(seller, tc.ratings)

			assert.Equal(t, tc.average, summary.Average().String())
			assert.Equal(t, len(tc.ratings), summary.Count())
			assert.True(t, summary.UserID().IsEqual(seller))
		})
	}

	t.Run("empty input", func(t *testing.T) {
		summary := aggregator.Aggregate(seller, nil)

		assert.True(t, summary.Average().IsZero())
		assert.Zero(t, summary.Count())
	})
}
