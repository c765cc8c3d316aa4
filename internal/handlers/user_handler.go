package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
	"github.com/vijay-kumar-79/ZCoder/internal/models"
	"github.com/vijay-kumar-79/ZCoder/internal/repositories"
	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

type UserHandler struct {
	Repo *repositories.UserRepository
}

func NewUserHandler(repo *repositories.UserRepository) *UserHandler {
	return &UserHandler{Repo: repo}
}

// ProfileHandler returns the authenticated user's profile.
func (h *UserHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.Repo.GetUserByID(middlewares.UserID(r))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// UpdateProfileHandler updates mutable profile fields (email, bio).
func (h *UserHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var updates models.User
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	// Identity fields are not updatable through this endpoint.
	updates.Username = ""
	updates.PasswordHash = ""

	user, err := h.Repo.UpdateUser(middlewares.UserID(r), &updates)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			utils.JSONError(w, http.StatusNotFound, "user not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to update user")
		}
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// SearchHandler matches usernames by case-insensitive prefix.
func (h *UserHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	prefix := strings.TrimSpace(chi.URLParam(r, "prefix"))
	if prefix == "" {
		utils.JSONError(w, http.StatusBadRequest, "search prefix is required")
		return
	}

	users, err := h.Repo.SearchByUsernamePrefix(prefix)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if len(users) == 0 {
		utils.JSONError(w, http.StatusNotFound, "no users found")
		return
	}
	utils.JSON(w, http.StatusOK, users)
}
