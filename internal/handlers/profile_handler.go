package handlers

import (
	"net/http"

	"familydirectory/internal/service"
)

// ProfileHandler serves the caller's own profile
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile returns the caller's profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context(), GetAccountID(r.Context()))
	if err != nil {
		respondServiceError(w, "Failed to get profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// UpdateProfile stores the caller's profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var input service.ProfileInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	profile, err := h.profiles.UpdateProfile(r.Context(), GetAccountID(r.Context()), input)
	if err != nil {
		respondServiceError(w, "Failed to update profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
