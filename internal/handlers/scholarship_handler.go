package handlers

import (
	"net/http"

	"github.com/vijay-kumar-79/ZCoder/internal/repositories"
	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

type ScholarshipHandler struct {
	Repo *repositories.ScholarshipRepository
}

func NewScholarshipHandler(repo *repositories.ScholarshipRepository) *ScholarshipHandler {
	return &ScholarshipHandler{Repo: repo}
}

// ListHandler returns the scholarship catalog, optionally filtered by
// ?region= and ?category=.
func (h *ScholarshipHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	scholarships, err := h.Repo.List(
		r.URL.Query().Get("region"),
		r.URL.Query().Get("category"),
	)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	utils.JSON(w, http.StatusOK, scholarships)
}
