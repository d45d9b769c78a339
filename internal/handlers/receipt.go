package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/internal/response"
	"github.com/centavault/wallet-backend/internal/share"
)

type ReceiptService interface {
	BuildRows(ctx context.Context, req dto.ReceiptRequest) (dto.ReceiptRowsResponse, error)
	RenderDocument(ctx context.Context, req dto.ReceiptRequest) (string, error)
	Export(ctx context.Context, req dto.ReceiptRequest, rich, basic share.Sharer) (*dto.SharedDocument, error)
}

type receiptHandlers struct {
	ResponseHandler response.ResponseHandler
	ReceiptSvc      ReceiptService
}

func NewReceiptHandlers(deps *Deps) *receiptHandlers {
	return &receiptHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReceiptSvc:      deps.ReceiptSvc,
	}
}

func (h *receiptHandlers) ReceiptRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/rows", h.BuildRows)
	r.Post("/preview", h.Preview)
	r.Post("/export", h.Export)
	return r
}

func (h *receiptHandlers) BuildRows(w http.ResponseWriter, r *http.Request) {
	var req dto.ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	resp, err := h.ReceiptSvc.BuildRows(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *receiptHandlers) Preview(w http.ResponseWriter, r *http.Request) {
	var req dto.ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	html, err := h.ReceiptSvc.RenderDocument(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// Export runs the share pipeline with the HTTP response as the share
// target: the rich path streams the PDF, the fallback answers with a
// textual summary when the client cannot take a document.
func (h *receiptHandlers) Export(w http.ResponseWriter, r *http.Request) {
	var req dto.ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	rich := &pdfDownloadSharer{w: w, accept: r.Header.Get("Accept")}
	basic := &summarySharer{w: w}

	if _, err := h.ReceiptSvc.Export(r.Context(), req, rich, basic); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	// A sharer has already written the response.
}
