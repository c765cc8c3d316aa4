package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
	"github.com/vijay-kumar-79/ZCoder/internal/models"
	"github.com/vijay-kumar-79/ZCoder/internal/repositories"
	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

type SolutionHandler struct {
	Repo *repositories.SolutionRepository
}

func NewSolutionHandler(repo *repositories.SolutionRepository) *SolutionHandler {
	return &SolutionHandler{Repo: repo}
}

// SubmitHandler stores a solution attributed to the caller.
func (h *SolutionHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitSolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.ProblemSlug == "" || req.Code == "" {
		utils.JSONError(w, http.StatusBadRequest, "problemSlug and code required")
		return
	}

	solution := &models.Solution{
		ProblemSlug: req.ProblemSlug,
		Code:        req.Code,
		Language:    req.Language,
		AuthorID:    middlewares.UserID(r),
	}
	if err := h.Repo.Create(solution); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to save solution")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Solution submitted successfully!",
		"id":      solution.ID,
	})
}

// DeleteHandler removes a solution; only its author may delete it.
func (h *SolutionHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid solution id")
		return
	}

	solution, err := h.Repo.GetByID(uint(id))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "solution not found")
		return
	}
	if solution.AuthorID != middlewares.UserID(r) {
		utils.JSONError(w, http.StatusForbidden, "unauthorized to delete this solution")
		return
	}

	if err := h.Repo.DeleteByID(uint(id)); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to delete solution")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// ListHandler returns all solutions for a problem, newest first.
func (h *SolutionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	solutions, err := h.Repo.ListByProblem(chi.URLParam(r, "problemSlug"))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	utils.JSON(w, http.StatusOK, solutions)
}

// DetailHandler returns one solution with its author.
func (h *SolutionHandler) DetailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid solution id")
		return
	}
	solution, err := h.Repo.GetByID(uint(id))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "solution not found")
		return
	}
	utils.JSON(w, http.StatusOK, solution)
}

// VoteHandler applies an upvote or downvote.
func (h *SolutionHandler) VoteHandler(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	delta := -1
	if req.VoteType == "upvote" {
		delta = 1
	}

	votes, err := h.Repo.Vote(req.SolutionID, delta)
	if err != nil {
		if err == repositories.ErrSolutionNotFound {
			utils.JSONError(w, http.StatusNotFound, "solution not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"success": true, "votes": votes})
}
