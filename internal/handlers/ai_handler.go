package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

// CompletionClient is the opaque external text-completion service.
type CompletionClient interface {
	Ask(ctx context.Context, message string) (string, error)
}

type AIHandler struct {
	Client CompletionClient
	Logger *zap.Logger
}

func NewAIHandler(client CompletionClient, logger *zap.Logger) *AIHandler {
	return &AIHandler{Client: client, Logger: logger}
}

type askRequest struct {
	Message string `json:"message"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// AskHandler forwards one message to the completion service.
func (h *AIHandler) AskHandler(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		utils.JSONError(w, http.StatusBadRequest, "message required")
		return
	}

	answer, err := h.Client.Ask(r.Context(), req.Message)
	if err != nil {
		h.Logger.Error("AI API error", zap.Error(err))
		utils.JSONError(w, http.StatusBadGateway, "failed to get AI response")
		return
	}
	utils.JSON(w, http.StatusOK, askResponse{Answer: answer})
}
