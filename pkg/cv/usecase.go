package cv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jain881/AIFolio/pkg/extract"
	"github.com/jain881/AIFolio/pkg/llm"
)

// ErrTextTooShort reports that extraction produced less text than the
// minimum viability threshold. Covers both unreadable files and files that
// are technically readable but carry no usable content.
var ErrTextTooShort = errors.New("extracted text too short")

// ErrGateway marks a failed model call. Not retried.
var ErrGateway = errors.New("model gateway failure")

// Result is what the upload use case hands back to the HTTP layer.
type Result struct {
	Record    Record
	Raw       string // unmodified model completion, for diagnostics
	CharsUsed int
	Truncated bool // input was cut to the prompt size limit
}

// Service runs the extraction pipeline: file → text → prompt → model →
// JSON recovery → normalized record.
type Service struct {
	llm      llm.Client
	minChars int
	maxChars int
}

func NewService(model llm.Client, minChars, maxChars int) *Service {
	if minChars <= 0 {
		minChars = 50
	}
	if maxChars <= 0 {
		maxChars = 12_000
	}
	return &Service{llm: model, minChars: minChars, maxChars: maxChars}
}

// Process extracts text from the file at path (kind inferred from
// declaredName), asks the model for the structured record and normalizes the
// reply. The caller owns the temp file and must remove it regardless of
// which step failed.
func (s *Service) Process(ctx context.Context, declaredName, path string) (Result, error) {
	text := strings.TrimSpace(extract.Extract(path, declaredName))
	if len(text) < s.minChars {
		return Result{}, ErrTextTooShort
	}

	truncated := false
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
		truncated = true
	}

	raw, err := s.llm.Complete(ctx, BuildPrompt(text))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	obj, err := Recover(raw)
	if err != nil {
		return Result{Raw: raw}, err
	}

	return Result{
		Record:    Normalize(obj),
		Raw:       raw,
		CharsUsed: len(text),
		Truncated: truncated,
	}, nil
}
