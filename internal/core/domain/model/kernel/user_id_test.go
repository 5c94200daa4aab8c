package kernel_test

import (
	"strings"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserID(t *testing.T) {
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		id, err := kernel.NewUserID("  buyer-1 ")

		require.NoError(t, err)
		assert.Equal(t, "buyer-1", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject empty ids", func(t *testing.T) {
		_, err := kernel.NewUserID("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject oversized ids", func(t *testing.T) {
		_, err := kernel.NewUserID(strings.Repeat("x", 129))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestUserID_IsEqual(t *testing.T) {
	a, _ := kernel.NewUserID("seller-1")
	b, _ := kernel.NewUserID("seller-1")
	c, _ := kernel.NewUserID("seller-2")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestUserID_ZeroValue(t *testing.T) {
	var id kernel.UserID

	assert.True(t, id.IsZero())
	require.ErrorIs(t, id.Validate(), kernel.ErrUserIDIsNotConstructed)
}
