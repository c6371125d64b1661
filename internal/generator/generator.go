package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/webforge/server/internal/llm"
)

// upper bound on a single generation request, upstream call included
const defaultGenerationTimeout = 300 * time.Second

// ErrQuotaExceeded is returned when the user has no generation credits left
// for the current calendar day.
var ErrQuotaExceeded = errors.New("daily prompt limit reached")

// CreditStore spends one of a user's daily generation credits. The spend must
// be atomic: a failed check leaves the counter untouched, and two concurrent
// requests can never both consume the last credit.
type CreditStore interface {
	ConsumePromptCredit(ctx context.Context, userID string, now time.Time) (bool, error)
}

// Service runs the prompt-to-website pipeline: credit check, prompt
// formatting, the upstream completion call, and response splitting.
type Service struct {
	credits   CreditStore
	generator llm.TextGenerator
	timeout   time.Duration
}

func New(credits CreditStore, textGen llm.TextGenerator) *Service {
	return &Service{
		credits:   credits,
		generator: textGen,
		timeout:   defaultGenerationTimeout,
	}
}

// Model reports which model completions are generated with.
func (s *Service) Model() string {
	return s.generator.Model()
}

// Generate turns a free-text website description into split HTML/CSS/JS
// artifacts. The credit is consumed before the upstream call, so a failed
// generation still costs one of the day's attempts. Quota breaches surface as
// ErrQuotaExceeded with no counter change and no outbound call.
func (s *Service) Generate(ctx context.Context, userID, description string) (*Result, error) {
	ok, err := s.credits.ConsumePromptCredit(ctx, userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to consume prompt credit: %w", err)
	}

	if !ok {
		return nil, ErrQuotaExceeded
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.GenerateText(ctx, SystemPrompt(), BuildUserPrompt(description))
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}

	result := Split(raw)

	return &result, nil
}
