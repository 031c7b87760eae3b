package preference

import "context"

type PreferenceService interface {
	GetTheme(ctx context.Context) (ThemeResponse, error)
	SetTheme(ctx context.Context, req UpdateThemeRequest) (ThemeResponse, error)
	ToggleTheme(ctx context.Context) (ThemeResponse, error)
}
