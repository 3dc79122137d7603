package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/woozio/download-service/internal/application"
	"github.com/woozio/download-service/internal/contracts"
	"github.com/woozio/download-service/internal/domain"
)

type Handler struct {
	service   *application.Service
	startedAt time.Time
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service, startedAt: time.Now().UTC()}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	var req contracts.DownloadRequest
	if r.Body != nil {
		// A malformed body leaves the fields empty and falls through to the
		// missing-fields rejection, after the rate check has run.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	grant, err := h.service.RequestDownload(r.Context(), application.DownloadInput{
		License:  req.License,
		Domain:   req.Domain,
		File:     req.File,
		ClientIP: clientIP(r),
	})
	if err != nil {
		statusCode, message := mapDownloadError(err)
		logHTTPOperationError(r.Context(), "download", statusCode, message, err)
		writeError(w, statusCode, message)
		return
	}

	writeGrant(w, "Download link generated successfully", contracts.DownloadData{
		URL:       grant.URL,
		ExpiresIn: int(grant.ExpiresAt.Sub(grant.IssuedAt).Seconds()),
		ExpiresAt: grant.ExpiresAt.Format(time.RFC3339),
		File:      grant.File,
	})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	now := time.Now().UTC()
	writeJSON(w, http.StatusOK, contracts.HealthResponse{
		Status:    "ok",
		Timestamp: now.Format(time.RFC3339),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	})
}

// mapDownloadError translates pipeline sentinels into the wire status and
// message. Validation reasons are surfaced verbatim; issuance detail never is.
func mapDownloadError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many requests. Please try again later."
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Missing license, domain, or file"
	case errors.Is(err, domain.ErrInvalidFileName):
		return http.StatusBadRequest, "Invalid file name"
	case errors.Is(err, domain.ErrLicenseNotFound):
		return http.StatusForbidden, "License not found"
	case errors.Is(err, domain.ErrLicenseInactive):
		return http.StatusForbidden, "License inactive"
	case errors.Is(err, domain.ErrLicenseExpired):
		return http.StatusForbidden, "License expired"
	case errors.Is(err, domain.ErrDomainNotAllowed):
		return http.StatusForbidden, "Domain not allowed"
	case errors.Is(err, domain.ErrFileNotPermitted):
		return http.StatusForbidden, "File not permitted for this license"
	case errors.Is(err, domain.ErrIssuanceFailed):
		return http.StatusInternalServerError, "Failed to generate download URL. Please try again later."
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
