package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/service"
)

type DirectoryHandler struct {
	directorySvc service.DirectoryService
}

func NewDirectoryHandler(directorySvc service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directorySvc: directorySvc}
}

// Listings handles GET /listings.
func (h *DirectoryHandler) Listings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.directorySvc.ListListings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data:  listings,
		Total: int32(len(listings)),
		Page:  1,
	})
}

// Listing handles GET /listings/{id}.
func (h *DirectoryHandler) Listing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.directorySvc.GetListing(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// Users handles GET /users. The role query parameter selects the hosts or
// guests view; it defaults to hosts.
func (h *DirectoryHandler) Users(w http.ResponseWriter, r *http.Request) {
	role := domain.UserRole(r.URL.Query().Get("role"))
	if role == "" {
		role = domain.UserRoleHost
	}
	if role != domain.UserRoleHost && role != domain.UserRoleGuest {
		writeError(w, http.StatusBadRequest, "role must be host or guest")
		return
	}

	users, err := h.directorySvc.ListUsers(r.Context(), role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Data:  users,
		Total: int32(len(users)),
		Page:  1,
	})
}
