package review

import (
	"marketplace/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a star count between MinRating and MaxRating.
type Rating int

func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return 0, errs.NewValueIsOutOfRangeError("rating", value, MinRating, MaxRating)
	}
	return Rating(value), nil
}

func (r Rating) Int() int {
	return int(r)
}
