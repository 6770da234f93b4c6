package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carcare/internal/kv"
	"github.com/dmitrijs2005/carcare/internal/models"
)

func (s *logService) getText(ctx context.Context, r kv.Repository, key string) (string, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(raw), nil
}

func (s *logService) setText(ctx context.Context, key, value string) error {
	if err := s.store.Set(ctx, key, []byte(value)); err != nil {
		s.log.Error(ctx, "failed to save setting", "key", key, "error", err)
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *logService) carName(ctx context.Context, r kv.Repository) (string, error) {
	name, err := s.getText(ctx, r, KeyCarName)
	if err != nil {
		return "", err
	}
	if name == "" {
		return models.DefaultCarName, nil
	}
	return name, nil
}

func (s *logService) theme(ctx context.Context, r kv.Repository) (models.Theme, error) {
	v, err := s.getText(ctx, r, KeyTheme)
	if err != nil {
		return "", err
	}
	if v == "" {
		return models.ThemeSystem, nil
	}
	return models.Theme(v), nil
}

func (s *logService) language(ctx context.Context, r kv.Repository) (models.Language, error) {
	v, err := s.getText(ctx, r, KeyLanguage)
	if err != nil {
		return "", err
	}
	if v == "" {
		return models.LanguageSystem, nil
	}
	return models.Language(v), nil
}

func (s *logService) firstTime(ctx context.Context, r kv.Repository) (bool, error) {
	raw, err := r.Get(ctx, KeyFirstTime)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", KeyFirstTime, err)
	}
	return raw == nil, nil
}

func (s *logService) CarName(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carName(ctx, s.store)
}

func (s *logService) SetCarName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setText(ctx, KeyCarName, name); err != nil {
		return err
	}
	s.log.Info(ctx, "car name changed", "name", name)
	return nil
}

func (s *logService) Theme(ctx context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme(ctx, s.store)
}

func (s *logService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return models.ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setText(ctx, KeyTheme, string(theme)); err != nil {
		return err
	}
	s.log.Info(ctx, "theme changed", "theme", theme)
	return nil
}

func (s *logService) Language(ctx context.Context) (models.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language(ctx, s.store)
}

func (s *logService) SetLanguage(ctx context.Context, lang models.Language) error {
	if !lang.Valid() {
		return models.ErrInvalidLanguage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setText(ctx, KeyLanguage, string(lang)); err != nil {
		return err
	}
	s.log.Info(ctx, "language changed", "language", lang)
	return nil
}

// IsFirstTime reports whether the first-run setup has not been completed.
func (s *logService) IsFirstTime(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstTime(ctx, s.store)
}

func (s *logService) CompleteFirstRun(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setText(ctx, KeyFirstTime, "false"); err != nil {
		return err
	}
	s.log.Debug(ctx, "first run completed")
	return nil
}

func (s *logService) Profile(ctx context.Context) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		p   models.Profile
		err error
	)
	if p.CarName, err = s.carName(ctx, s.store); err != nil {
		return p, err
	}
	if p.Theme, err = s.theme(ctx, s.store); err != nil {
		return p, err
	}
	if p.Language, err = s.language(ctx, s.store); err != nil {
		return p, err
	}
	if p.FirstRun, err = s.firstTime(ctx, s.store); err != nil {
		return p, err
	}
	return p, nil
}
