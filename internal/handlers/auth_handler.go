package handlers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/vijay-kumar-79/ZCoder/internal/middlewares"
	"github.com/vijay-kumar-79/ZCoder/internal/models"
	"github.com/vijay-kumar-79/ZCoder/internal/repositories"
	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

// AuthHandler manages authentication endpoints.
type AuthHandler struct {
	Repo      *repositories.UserRepository
	JWTSecret string
}

func NewAuthHandler(repo *repositories.UserRepository, secret string) *AuthHandler {
	return &AuthHandler{Repo: repo, JWTSecret: secret}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing fields")
		return
	}

	if existing, _ := h.Repo.GetUserByUsername(req.Username); existing != nil {
		utils.JSONError(w, http.StatusConflict, "username taken")
		return
	}
	if existing, _ := h.Repo.GetUserByEmail(req.Email); existing != nil {
		utils.JSONError(w, http.StatusConflict, "email taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	user := &models.User{Username: req.Username, Email: req.Email, PasswordHash: string(hash)}
	if err := h.Repo.CreateUser(user); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{
		"id": user.ID, "username": user.Username, "email": user.Email,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	user, err := h.Repo.GetUserByUsername(req.Username)
	if err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	signed, err := utils.GenerateToken(user.ID, user.Username, h.JWTSecret)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}
	utils.JSON(w, http.StatusOK, authResponse{Token: signed})
}

// MeHandler returns the authenticated user.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.Repo.GetUserByID(middlewares.UserID(r))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
