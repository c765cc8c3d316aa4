package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vijay-kumar-79/ZCoder/internal/bookmarks"
	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

type BookmarkHandler struct {
	Store  *bookmarks.Store
	Logger *zap.Logger
}

func NewBookmarkHandler(store *bookmarks.Store, logger *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{Store: store, Logger: logger}
}

type toggleRequest struct {
	ProblemSlug string `json:"problemSlug"`
}

func (h *BookmarkHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	username := middlewares.Username(r)
	slugs, err := h.Store.List(r.Context(), username)
	if err != nil {
		h.Logger.Error("failed to fetch bookmarks",
			zap.String("username", username), zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"username":  username,
		"bookmarks": slugs,
	})
}

func (h *BookmarkHandler) ToggleHandler(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProblemSlug == "" {
		utils.JSONError(w, http.StatusBadRequest, "problemSlug required")
		return
	}

	username := middlewares.Username(r)
	slugs, err := h.Store.Toggle(r.Context(), username, req.ProblemSlug)
	if err != nil {
		h.Logger.Error("failed to toggle bookmark",
			zap.String("username", username),
			zap.String("problemSlug", req.ProblemSlug),
			zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"username":  username,
		"bookmarks": slugs,
	})
}
