package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/centavault/wallet-backend/internal/config"
	"github.com/centavault/wallet-backend/internal/document"
	"github.com/centavault/wallet-backend/internal/format"
	"github.com/centavault/wallet-backend/internal/handlers"
	"github.com/centavault/wallet-backend/internal/middleware"
	"github.com/centavault/wallet-backend/internal/pdfgen"
	"github.com/centavault/wallet-backend/internal/response"
	"github.com/centavault/wallet-backend/internal/router"
	"github.com/centavault/wallet-backend/internal/services"
	"github.com/centavault/wallet-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	log := logger.New(cfg.LogLevel, logger.NewCloudRunHandler)

	// engine
	formatter := format.New(cfg.CurrencyGlyphs)
	renderer := document.NewRenderer(cfg.ShareTitle)
	generator := pdfgen.New()

	// services
	rserv := services.NewReceiptService(formatter, renderer, generator, cfg.ShareTitle)

	// response handler
	rh := response.New(log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = log
	deps.ResponseHandler = rh
	deps.ReceiptSvc = rserv
	if cfg.AuthToken != "" {
		deps.Verifier = &middleware.StaticVerifier{Token: cfg.AuthToken}
	}

	// router
	r := router.NewRouter(deps)
	log.Info("receipts api listening", "port", cfg.Port)
	err := http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, log)
}
