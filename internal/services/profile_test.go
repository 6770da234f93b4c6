package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/carcare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Defaults(t *testing.T) {
	s, _ := newService(t)
	p, err := s.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfile(), p)
}

func TestProfile_Setters(t *testing.T) {
	s, store := newService(t)
	ctx := context.Background()

	require.NoError(t, s.SetCarName(ctx, "Golf"))
	require.NoError(t, s.SetTheme(ctx, models.ThemeLight))
	require.NoError(t, s.SetLanguage(ctx, models.LanguageArabic))

	name, err := s.CarName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Golf", name)

	theme, err := s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)

	lang, err := s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LanguageArabic, lang)

	raw, err := store.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte("light"), raw)
}

func TestProfile_EmptyCarNameFallsBack(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()
	require.NoError(t, s.SetCarName(ctx, ""))

	name, err := s.CarName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Car", name)
}

func TestProfile_RejectsInvalidValues(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	require.ErrorIs(t, s.SetTheme(ctx, "neon"), models.ErrInvalidTheme)
	require.ErrorIs(t, s.SetLanguage(ctx, "fr"), models.ErrInvalidLanguage)

	theme, err := s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeSystem, theme)
}

func TestFirstRun(t *testing.T) {
	s, store := newService(t)
	ctx := context.Background()

	first, err := s.IsFirstTime(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	require.NoError(t, s.CompleteFirstRun(ctx))

	first, err = s.IsFirstTime(ctx)
	require.NoError(t, err)
	assert.False(t, first)

	raw, err := store.Get(ctx, KeyFirstTime)
	require.NoError(t, err)
	assert.Equal(t, []byte("false"), raw)
}
