package handlers

import (
	"log/slog"

	"github.com/centavault/wallet-backend/internal/middleware"
	"github.com/centavault/wallet-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ReceiptSvc      ReceiptService
	Verifier        middleware.TokenVerifier
}
