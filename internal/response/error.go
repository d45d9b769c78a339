package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/centavault/wallet-backend/internal/errs"
	"github.com/centavault/wallet-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		// Use context logger if encoding fails
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.ExportInFlightError:
		log.Warn("export rejected", "error", e.Message)
		h.WriteError(w, r, http.StatusConflict, "export_in_flight", e.Message)

	case *errs.GenerationError:
		log.Error("document generation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "generation_failed",
			"Could not generate the receipt document")

	case *errs.ShareUnavailableError:
		log.Error("share facility unavailable", "error", e.Message)
		h.WriteError(w, r, http.StatusServiceUnavailable, "share_unavailable",
			"Sharing is temporarily unavailable")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
