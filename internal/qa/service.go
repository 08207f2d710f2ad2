package qa

import (
	"context"
	"fmt"

	"github.com/ppiankov/presbot/internal/infobox"
)

// PageSource resolves a subject to the rendered HTML of its reference page
type PageSource interface {
	RenderedPage(ctx context.Context, subject string) (string, error)
}

// Service answers president questions by scraping the subject's reference
// page. Nothing is cached: every call fetches and re-parses from scratch.
type Service struct {
	source PageSource
}

// NewService creates a Service backed by the given page source
func NewService(source PageSource) *Service {
	return &Service{source: source}
}

// answerField runs the full extraction pipeline for one field:
// fetch page -> locate first infobox -> clean text -> apply field pattern
func (s *Service) answerField(ctx context.Context, subject string, field infobox.Field) (string, error) {
	pageHTML, err := s.source.RenderedPage(ctx, subject)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", subject, err)
	}

	boxText, err := infobox.FirstInfoboxText(pageHTML)
	if err != nil {
		return "", err
	}

	return infobox.ExtractField(infobox.CleanText(boxText), field)
}

// fieldHandler adapts one field extraction into a Handler. The first
// wildcard binding is the subject.
func (s *Service) fieldHandler(field infobox.Field) Handler {
	return func(ctx context.Context, bindings []string) ([]string, error) {
		answer, err := s.answerField(ctx, bindings[0], field)
		if err != nil {
			return nil, err
		}
		return []string{answer}, nil
	}
}
