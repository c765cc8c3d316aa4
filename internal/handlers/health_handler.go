package handlers

import (
	"net/http"

	"github.com/vijay-kumar-79/ZCoder/internal/utils"
)

func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func PingHandler(w http.ResponseWriter, _ *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"msg": "API is working !!"})
}
