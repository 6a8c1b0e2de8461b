package contentgen

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackGenerator_Promote(t *testing.T) {
	date := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	event := &domain.Event{Name: "Summer Gala", Location: "Lagos", Date: &date}

	gen := NewFallbackGenerator()
	variants, source, err := gen.Promote(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, domain.PromoSourceFallback, source)
	require.Len(t, variants, 3)
	for _, v := range variants {
		assert.Contains(t, v, "Summer Gala")
		assert.Contains(t, v, "Lagos")
	}

	// Same input, same output.
	again, _, err := gen.Promote(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, variants, again)
}

func TestFallbackGenerator_Promote_MissingLocation(t *testing.T) {
	gen := NewFallbackGenerator()
	variants, _, err := gen.Promote(context.Background(), &domain.Event{Name: "Meetup"})
	require.NoError(t, err)
	assert.Contains(t, variants[0], "a venue near you")
}

func TestFallbackGenerator_Improve(t *testing.T) {
	date := time.Date(2025, 7, 4, 19, 0, 0, 0, time.UTC)
	event := &domain.Event{Name: "Summer Gala", Location: "Lagos", Date: &date, Description: "An evening of music."}

	gen := NewFallbackGenerator()

	t.Run("uses the draft when given", func(t *testing.T) {
		text, source, err := gen.Improve(context.Background(), event, "Dancing till late.")
		require.NoError(t, err)
		require.Equal(t, domain.PromoSourceFallback, source)
		assert.True(t, strings.HasPrefix(text, "Join us for Summer Gala."))
		assert.Contains(t, text, "Dancing till late.")
		assert.Contains(t, text, "Lagos")
	})

	t.Run("falls back to the stored description", func(t *testing.T) {
		text, _, err := gen.Improve(context.Background(), event, "  ")
		require.NoError(t, err)
		assert.Contains(t, text, "An evening of music.")
	})
}
