package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wmoldes/roster-backend/internal/domain/preference"
	"github.com/wmoldes/roster-backend/internal/handler/http/response"
)

type PreferenceHandler interface {
	GetTheme(w http.ResponseWriter, r *http.Request)
	SetTheme(w http.ResponseWriter, r *http.Request)
	ToggleTheme(w http.ResponseWriter, r *http.Request)
}

type preferenceHandlerImpl struct {
	preferenceService preference.PreferenceService
}

func NewPreferenceHandler(preferenceService preference.PreferenceService) PreferenceHandler {
	return &preferenceHandlerImpl{preferenceService: preferenceService}
}

func (h *preferenceHandlerImpl) GetTheme(w http.ResponseWriter, r *http.Request) {
	result, err := h.preferenceService.GetTheme(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *preferenceHandlerImpl) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req preference.UpdateThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetTheme decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.preferenceService.SetTheme(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Theme updated", result)
}

func (h *preferenceHandlerImpl) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	result, err := h.preferenceService.ToggleTheme(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Theme updated", result)
}
