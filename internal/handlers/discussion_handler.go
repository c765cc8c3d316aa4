package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
	"github.com/vijay-kumar-79/ZCoder/internal/models"
	"github.com/vijay-kumar-79/ZCoder/internal/repositories"
	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

type DiscussionHandler struct {
	Repo *repositories.DiscussionRepository
}

func NewDiscussionHandler(repo *repositories.DiscussionRepository) *DiscussionHandler {
	return &DiscussionHandler{Repo: repo}
}

// ListHandler returns the discussion thread for a problem.
func (h *DiscussionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.ListByProblem(chi.URLParam(r, "problemId"))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if len(posts) == 0 {
		utils.JSONError(w, http.StatusNotFound, "no solutions found for this problem")
		return
	}
	utils.JSON(w, http.StatusOK, posts)
}

type addPostRequest struct {
	Content string `json:"content"`
}

// AddHandler appends a post to the problem's thread.
func (h *DiscussionHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	var req addPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
		utils.JSONError(w, http.StatusBadRequest, "content required")
		return
	}

	post := &models.DiscussionPost{
		ProblemID: chi.URLParam(r, "problemId"),
		UserID:    middlewares.UserID(r),
		Username:  middlewares.Username(r),
		Content:   req.Content,
	}
	if err := h.Repo.AddPost(post); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to add post")
		return
	}
	utils.JSON(w, http.StatusCreated, post)
}
