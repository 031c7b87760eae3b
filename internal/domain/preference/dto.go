package preference

import "github.com/wmoldes/roster-backend/internal/pkg/validator"

type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

func (r *UpdateThemeRequest) Validate() error {
	return validator.Struct(r)
}

type ThemeResponse struct {
	Theme Theme `json:"theme"`
}
