package opinion_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/opinion"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpinion(t *testing.T) {
	t.Run("should create a valid opinion", func(t *testing.T) {
		o, err := opinion.NewOpinion(10, 4, "  solid, arrived on time  ")
		require.NoError(t, err)

		assert.Equal(t, 10, o.OrderID())
		assert.Equal(t, 4, o.Rating())
		assert.Equal(t, "solid, arrived on time", o.Content())
		assert.Zero(t, o.ID())
		require.NoError(t, o.Validate())
	})

	t.Run("should accept boundary ratings", func(t *testing.T) {
		for _, rating := range []int{opinion.MinRating, opinion.MaxRating} {
			_, err := opinion.NewOpinion(10, rating, "ok")
			require.NoError(t, err)
		}
	})

	t.Run("should reject ratings outside the scale", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6, 100} {
			_, err := opinion.NewOpinion(10, rating, "ok")
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject empty content after trimming", func(t *testing.T) {
		for _, content := range []string{"", "   ", "\n\t"} {
			_, err := opinion.NewOpinion(10, 3, content)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should reject a non-positive order id", func(t *testing.T) {
		_, err := opinion.NewOpinion(0, 3, "ok")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOpinion_Validate(t *testing.T) {
	var zero opinion.Opinion
	require.ErrorIs(t, zero.Validate(), opinion.ErrOpinionIsNotConstructed)

	var nilOpinion *opinion.Opinion
	require.ErrorIs(t, nilOpinion.Validate(), opinion.ErrOpinionIsNotConstructed)
}

func TestRestoreOpinion(t *testing.T) {
	t.Run("should rehydrate a persisted opinion", func(t *testing.T) {
		createdAt := time.Now()
		o, err := opinion.RestoreOpinion(3, 10, 5, "great", createdAt)
		require.NoError(t, err)

		assert.Equal(t, 3, o.ID())
		assert.True(t, createdAt.Equal(o.CreatedAt()))
	})

	t.Run("should reject a non-positive id", func(t *testing.T) {
		_, err := opinion.RestoreOpinion(0, 10, 5, "great", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
