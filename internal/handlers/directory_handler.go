package handlers

import (
	"context"
	"net/http"
	"strings"

	"familydirectory/internal/directory"
	"familydirectory/internal/service"
)

// DirectoryHandler serves the read-only directory views
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// ListFamilies returns the families matching the query's location and attribute filters
func (h *DirectoryHandler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	listing, err := h.directory.ListFamilies(r.Context(), selectionFromQuery(r), attributesFromQuery(r))
	if err != nil {
		respondServiceError(w, "Failed to list families", err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// FamilyTree returns one family's members grouped by generation
func (h *DirectoryHandler) FamilyTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.directory.FamilyTree(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, "Failed to build family tree", err)
		return
	}
	respondJSON(w, http.StatusOK, tree)
}

// ListMigrations returns the marriage migrations, optionally limited to the filtered families
func (h *DirectoryHandler) ListMigrations(w http.ResponseWriter, r *http.Request) {
	scope, err := service.ParseMigrationScope(r.URL.Query().Get("scope"))
	if err != nil {
		respondServiceError(w, "", err)
		return
	}

	listing, err := h.directory.ListMigrations(r.Context(), scope, selectionFromQuery(r), attributesFromQuery(r))
	if err != nil {
		respondServiceError(w, "Failed to list migrations", err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

type locationList struct {
	Parent string   `json:"parent,omitempty"`
	Items  []string `json:"items"`
}

// ListStates returns every known state
func (h *DirectoryHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, locationList{Items: h.directory.Locations().States()})
}

// ListDistricts returns the districts of ?state=
func (h *DirectoryHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	h.listChildren(w, r, "state", h.directory.Locations().DistrictsForState)
}

// ListCities returns the cities of ?district=, the district itself included
func (h *DirectoryHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	h.listChildren(w, r, "district", h.directory.Locations().CitiesForDistrict)
}

// ListVillages returns the villages of ?city=
func (h *DirectoryHandler) ListVillages(w http.ResponseWriter, r *http.Request) {
	h.listChildren(w, r, "city", h.directory.Locations().VillagesForCity)
}

func (h *DirectoryHandler) listChildren(w http.ResponseWriter, r *http.Request, param string, lookup func(string) []string) {
	parent := strings.TrimSpace(r.URL.Query().Get(param))
	if parent == "" || strings.EqualFold(parent, directory.All) {
		respondWithError(w, http.StatusBadRequest, "Missing "+param+" parameter", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, locationList{Parent: parent, Items: lookup(parent)})
}

func selectionFromQuery(r *http.Request) directory.LocationSelection {
	q := r.URL.Query()
	return directory.NewLocationSelection(q.Get("state"), q.Get("district"), q.Get("city"), q.Get("village"))
}

func attributesFromQuery(r *http.Request) directory.AttributeFilterState {
	q := r.URL.Query()
	return directory.AttributeFilterState{
		SearchTerm:    strings.TrimSpace(q.Get("q")),
		Generation:    q.Get("generation"),
		Gender:        q.Get("gender"),
		MaritalStatus: q.Get("marital_status"),
		Occupation:    q.Get("occupation"),
	}
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health reports service liveness and store reachability
func Health(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.PingContext(r.Context()); err != nil {
			respondWithError(w, http.StatusServiceUnavailable, "Database unavailable", "Health check failed", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
