package http

import (
	"encoding/json"
	"net/http"

	"github.com/woozio/download-service/internal/contracts"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeGrant(w http.ResponseWriter, message string, data contracts.DownloadData) {
	writeJSON(w, http.StatusOK, contracts.SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, contracts.ErrorResponse{
		Success: false,
		Error:   message,
	})
}
