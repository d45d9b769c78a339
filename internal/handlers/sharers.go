package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/centavault/wallet-backend/internal/dto"
)

// pdfDownloadSharer is the rich share facility for API clients: it streams
// the generated PDF as an attachment. Unavailable when the client's Accept
// header rules out PDF, which pushes the pipeline to the fallback.
type pdfDownloadSharer struct {
	w      http.ResponseWriter
	accept string
}

func (s *pdfDownloadSharer) Available() bool {
	accept := strings.TrimSpace(s.accept)
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "application/pdf") ||
		strings.Contains(accept, "*/*") ||
		strings.Contains(accept, "application/*")
}

func (s *pdfDownloadSharer) Share(_ context.Context, doc dto.SharedDocument) error {
	s.w.Header().Set("Content-Type", doc.MIME)
	s.w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes)))
	s.w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	s.w.Header().Set("X-Share-Title", doc.Title)
	s.w.WriteHeader(http.StatusOK)
	_, err := s.w.Write(doc.Bytes)
	return err
}

// summarySharer is the generic fallback: a plain-text summary of the
// receipt when the document itself cannot be delivered.
type summarySharer struct {
	w http.ResponseWriter
}

func (s *summarySharer) Available() bool { return true }

func (s *summarySharer) Share(_ context.Context, doc dto.SharedDocument) error {
	s.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	s.w.WriteHeader(http.StatusOK)
	_, err := s.w.Write([]byte(doc.Summary))
	return err
}
