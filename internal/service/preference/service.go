package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wmoldes/roster-backend/internal/domain/preference"
)

type PreferenceServiceImpl struct {
	preferenceRepo preference.PreferenceRepository
}

func NewPreferenceService(preferenceRepo preference.PreferenceRepository) preference.PreferenceService {
	return &PreferenceServiceImpl{preferenceRepo: preferenceRepo}
}

// GetTheme falls back to the default theme when none is stored or the stored value is unknown.
func (s *PreferenceServiceImpl) GetTheme(ctx context.Context) (preference.ThemeResponse, error) {
	theme, err := s.currentTheme(ctx)
	if err != nil {
		return preference.ThemeResponse{}, err
	}
	return preference.ThemeResponse{Theme: theme}, nil
}

func (s *PreferenceServiceImpl) SetTheme(ctx context.Context, req preference.UpdateThemeRequest) (preference.ThemeResponse, error) {
	if err := req.Validate(); err != nil {
		return preference.ThemeResponse{}, err
	}
	return s.save(ctx, preference.Theme(req.Theme))
}

// ToggleTheme implements preference.PreferenceService.
func (s *PreferenceServiceImpl) ToggleTheme(ctx context.Context) (preference.ThemeResponse, error) {
	theme, err := s.currentTheme(ctx)
	if err != nil {
		return preference.ThemeResponse{}, err
	}
	return s.save(ctx, theme.Toggle())
}

func (s *PreferenceServiceImpl) currentTheme(ctx context.Context) (preference.Theme, error) {
	value, err := s.preferenceRepo.Get(ctx, preference.KeyTheme)
	if errors.Is(err, preference.ErrPreferenceNotFound) {
		return preference.DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme preference: %w", err)
	}

	theme := preference.Theme(value)
	if !theme.Valid() {
		slog.Warn("Ignoring unknown stored theme", "value", value)
		return preference.DefaultTheme, nil
	}
	return theme, nil
}

func (s *PreferenceServiceImpl) save(ctx context.Context, theme preference.Theme) (preference.ThemeResponse, error) {
	if err := s.preferenceRepo.Set(ctx, preference.KeyTheme, string(theme)); err != nil {
		return preference.ThemeResponse{}, fmt.Errorf("save theme preference: %w", err)
	}
	slog.Info("Theme preference saved", "theme", theme)
	return preference.ThemeResponse{Theme: theme}, nil
}
