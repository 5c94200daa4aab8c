package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("orderID", "ord-1")
	assert.Equal(t, "object not found: ord-1", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	withCause := errs.NewObjectNotFoundErrorWithCause("orderID", "ord-1", errors.New("no rows"))
	assert.Equal(t, "object not found: param is: orderID, ID is: ord-1 (cause: no rows)", withCause.Error())
	require.ErrorIs(t, withCause, errs.ErrObjectNotFound)
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("deliveryType")
	assert.Equal(t, "value is invalid: deliveryType", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("paymentMethod", errors.New("paypal"))
	assert.Equal(t, "value is invalid: paymentMethod (cause: paypal)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)
	assert.Equal(t, "value is out of range: rating is 6, min value is 1, max value is 5", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsOutOfRangeErrorWithCause("limit", 0, 1, 100, errors.New("too small"))
	assert.Equal(t,
		"value is out of range: limit is 0, min value is 1, max value is 100 (cause: too small)",
		withCause.Error())
}

func TestValueIsOutOfRangeErrorKeepsSingleLine(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("comment", "line one\r\nline two\nthree", 0, 500)

	assert.NotContains(t, err.Error(), "\n")
	assert.Contains(t, err.Error(), "line one line two three")
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("transactionRef")
	assert.Equal(t, "value is required: transactionRef", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("sellerID", errors.New("empty"))
	assert.Equal(t, "value is required: sellerID (cause: empty)", withCause.Error())
}

func TestWrappedErrorsStillMatchSentinels(t *testing.T) {
	var target *errs.ValueIsRequiredError
	err := errors.Join(errors.New("create order"), errs.NewValueIsRequiredError("buyerID"))

	require.ErrorAs(t, err, &target)
	assert.Equal(t, "buyerID", target.ParamName)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}
