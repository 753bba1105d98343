package handlers

import (
	"net/http"

	"familydirectory/internal/service"
)

// MemberHandler serves the caller's family member records
type MemberHandler struct {
	members *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(members *service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// ListMembers returns the caller's family members
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.ListMembers(r.Context(), GetAccountID(r.Context()))
	if err != nil {
		respondServiceError(w, "Failed to list members", err)
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// CreateMember adds a member to the caller's family
func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var input service.MemberInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	member, err := h.members.CreateMember(r.Context(), GetAccountID(r.Context()), input)
	if err != nil {
		respondServiceError(w, "Failed to create member", err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

// UpdateMember replaces a member's editable fields
func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var input service.MemberInput
	if err := decodeJSON(w, r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	member, err := h.members.UpdateMember(r.Context(), GetAccountID(r.Context()), r.PathValue("id"), input)
	if err != nil {
		respondServiceError(w, "Failed to update member", err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// DeleteMember removes a member
func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.members.DeleteMember(r.Context(), GetAccountID(r.Context()), r.PathValue("id")); err != nil {
		respondServiceError(w, "Failed to delete member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
