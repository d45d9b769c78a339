package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/centavault/wallet-backend/internal/classify"
	"github.com/centavault/wallet-backend/internal/document"
	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/internal/errs"
	"github.com/centavault/wallet-backend/internal/format"
	"github.com/centavault/wallet-backend/internal/normalize"
	"github.com/centavault/wallet-backend/internal/rowspec"
	"github.com/centavault/wallet-backend/internal/share"
	"github.com/centavault/wallet-backend/pkg/logger"
)

const noDataMessage = "no transaction data"

type receiptService struct {
	formatter *format.Formatter
	renderer  *document.Renderer
	generator share.Generator
	title     string
}

func NewReceiptService(formatter *format.Formatter, renderer *document.Renderer, generator share.Generator, title string) *receiptService {
	return &receiptService{
		formatter: formatter,
		renderer:  renderer,
		generator: generator,
		title:     title,
	}
}

// BuildRows runs the full normalization pass: classify once, merge once,
// build the canonical row list once. A malformed envelope yields the
// explicit no-data state instead of an error.
func (s *receiptService) BuildRows(ctx context.Context, req dto.ReceiptRequest) (dto.ReceiptRowsResponse, error) {
	env, ok := decodeEnvelope(req.Envelope)
	if !ok {
		return dto.ReceiptRowsResponse{
			NoData:  true,
			Message: noDataMessage,
			Rows:    []dto.CanonicalRow{},
		}, nil
	}

	category := classify.Classify(env)
	merged := normalize.Merge(env, req.Raw, category)
	rows := rowspec.Build(env, merged, s.formatter)

	log := logger.FromContext(ctx)
	log.Info("receipt rows built", "category", string(category), "rows", len(rows))

	return dto.ReceiptRowsResponse{
		Category: category,
		Summary:  rowspec.Summary(env),
		Rows:     rows,
	}, nil
}

// RenderDocument produces the stand-alone HTML receipt from the same row
// list the interactive view consumes.
func (s *receiptService) RenderDocument(ctx context.Context, req dto.ReceiptRequest) (string, error) {
	resp, err := s.BuildRows(ctx, req)
	if err != nil {
		return "", err
	}
	if resp.NoData {
		return "", errs.NewValidationError(noDataMessage)
	}
	html, err := s.renderer.Render(resp.Summary, resp.Rows)
	if err != nil {
		return "", errs.NewGenerationError(err.Error())
	}
	return html, nil
}

// Export drives a fresh share pipeline for one user-triggered export.
func (s *receiptService) Export(ctx context.Context, req dto.ReceiptRequest, rich, basic share.Sharer) (*dto.SharedDocument, error) {
	resp, err := s.BuildRows(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.NoData {
		return nil, errs.NewValidationError(noDataMessage)
	}

	doc := dto.ReceiptDocument{
		Summary:  resp.Summary,
		Rows:     resp.Rows,
		Title:    s.title,
		Filename: exportFilename(req),
	}

	pipeline := share.New(s.generator, rich, basic)
	return pipeline.Export(ctx, doc)
}

func decodeEnvelope(raw json.RawMessage) (dto.Envelope, bool) {
	var env dto.Envelope
	if len(raw) == 0 {
		return env, false
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return dto.Envelope{}, false
	}
	if env.ID == "" && env.Type == "" && env.Amount == "" && env.Date == "" {
		return env, false
	}
	return env, true
}

func exportFilename(req dto.ReceiptRequest) string {
	env, ok := decodeEnvelope(req.Envelope)
	if ok && env.ID != "" {
		return fmt.Sprintf("receipt-%s.pdf", env.ID)
	}
	return "receipt.pdf"
}
