// Package share drives receipt export: document generation followed by
// hand-off to the platform share facility, with a generic fallback.
package share

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/internal/errs"
	"github.com/centavault/wallet-backend/pkg/logger"
)

// State of the export pipeline. Idle → Generating → (Ready → Shared) | Failed.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateReady      State = "ready"
	StateShared     State = "shared"
	StateFailed     State = "failed"
)

// Generator produces the export artifact from already-canonical data.
type Generator interface {
	Generate(ctx context.Context, doc dto.ReceiptDocument) ([]byte, error)
}

// Sharer hands a generated document to a share facility. Available lets the
// pipeline skip a facility the platform does not offer right now.
type Sharer interface {
	Available() bool
	Share(ctx context.Context, doc dto.SharedDocument) error
}

// Pipeline is a single-use export driver. Each user-triggered share starts
// a fresh instance; no state survives across invocations.
type Pipeline struct {
	gen   Generator
	rich  Sharer
	basic Sharer

	mu    sync.Mutex
	state State
}

func New(gen Generator, rich, basic Sharer) *Pipeline {
	return &Pipeline{gen: gen, rich: rich, basic: basic, state: StateIdle}
}

// State reports the current pipeline state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Export runs the full pipeline. A second trigger while generation is in
// flight is rejected rather than queued, closing the double-tap gap. On any
// failure the pipeline rests at Failed with no partial document retained;
// callers start a fresh pipeline to retry.
func (p *Pipeline) Export(ctx context.Context, doc dto.ReceiptDocument) (*dto.SharedDocument, error) {
	p.mu.Lock()
	if p.state != StateIdle {
		p.mu.Unlock()
		return nil, errs.NewExportInFlightError()
	}
	p.state = StateGenerating
	p.mu.Unlock()

	log := logger.FromContext(ctx)

	bytes, err := p.gen.Generate(ctx, doc)
	if err != nil || len(bytes) == 0 {
		p.setState(StateFailed)
		log.Error("receipt generation failed", "error", err)
		if err != nil {
			return nil, errs.NewGenerationError(err.Error())
		}
		return nil, errs.NewGenerationError("generator produced no output")
	}
	p.setState(StateReady)

	shared := dto.SharedDocument{
		ID:       uuid.New().String(),
		Title:    doc.Title,
		Filename: doc.Filename,
		MIME:     "application/pdf",
		Bytes:    bytes,
		Summary:  textSummary(doc),
	}

	if err := p.deliver(ctx, shared); err != nil {
		p.setState(StateFailed)
		log.Error("share failed", "error", err, "document_id", shared.ID)
		return nil, errs.NewShareUnavailableError(err.Error())
	}

	p.setState(StateShared)
	log.Info("receipt shared", "document_id", shared.ID, "bytes", len(shared.Bytes))
	return &shared, nil
}

// deliver tries the rich platform facility first, then the generic one.
func (p *Pipeline) deliver(ctx context.Context, doc dto.SharedDocument) error {
	if p.rich != nil && p.rich.Available() {
		if err := p.rich.Share(ctx, doc); err == nil {
			return nil
		} else if p.basic == nil || !p.basic.Available() {
			return err
		}
	}
	if p.basic != nil && p.basic.Available() {
		return p.basic.Share(ctx, doc)
	}
	return fmt.Errorf("no share facility available")
}

// textSummary is the fallback payload for share targets that cannot accept
// a document.
func textSummary(doc dto.ReceiptDocument) string {
	s := doc.Summary
	return fmt.Sprintf("%s: %s (%s) on %s", doc.Title, s.Amount, s.Status, s.Date)
}
