package narrative

import (
	"context"

	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/models"
)

const systemPrompt = "You are a supportive study coach. Reply in plain text without lists or headings."

// Summarizer produces plan summaries, asking an optional TextProvider for a
// recommendation first. Provider failures are logged and never returned.
type Summarizer struct {
	builder  *Builder
	provider TextProvider
}

// NewSummarizer returns a Summarizer. A nil provider always uses the fallback template.
func NewSummarizer(provider TextProvider) *Summarizer {
	return &Summarizer{builder: NewBuilder(), provider: provider}
}

func (s *Summarizer) Summarize(ctx context.Context, items []models.RoutineItem, duration int) string {
	data := NewData(items, duration, DominantFocus(items))
	if s.provider == nil {
		return s.builder.Fallback(data)
	}

	prompt, err := s.builder.Prompt(data)
	if err != nil {
		logger.Warn("Failed to render summary prompt, using fallback", "error", err)
		return s.builder.Fallback(data)
	}

	text, err := s.provider.GenerateText(ctx, systemPrompt, prompt)
	if err != nil {
		logger.Warn("Text provider failed, using fallback summary", "error", err)
		return s.builder.Fallback(data)
	}

	data.Recommendation = text
	return s.builder.Primary(data)
}
