package generator

import (
	"context"
	"testing"
	"time"

	"codeberg.org/webforge/server/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements CreditStore for testing
type mockCreditStore struct {
	consumeFunc func(ctx context.Context, userID string, now time.Time) (bool, error)
	calls       int
}

func (m *mockCreditStore) ConsumePromptCredit(ctx context.Context, userID string, now time.Time) (bool, error) {
	m.calls++

	if m.consumeFunc != nil {
		return m.consumeFunc(ctx, userID, now)
	}

	return true, nil
}

// implements llm.TextGenerator for testing
type mockTextGenerator struct {
	generateTextFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	calls            int
}

func (m *mockTextGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++

	if m.generateTextFunc != nil {
		return m.generateTextFunc(ctx, systemPrompt, userPrompt)
	}

	return markerHTML + "\n<h1>ok</h1>", nil
}

func (m *mockTextGenerator) Model() string {
	return "mock-model"
}

func TestGenerate_Success(t *testing.T) {
	credits := &mockCreditStore{}
	textGen := &mockTextGenerator{
		generateTextFunc: func(_ context.Context, systemPrompt, userPrompt string) (string, error) {
			// system prompt pins the output protocol
			assert.Contains(t, systemPrompt, markerHTML)
			assert.Contains(t, systemPrompt, markerCSS)
			assert.Contains(t, systemPrompt, markerJS)

			// the description is interpolated verbatim
			assert.Contains(t, userPrompt, "a dark portfolio site")

			return "### HTML CODE ###\n<main>portfolio</main>\n" +
				"### CSS CODE ###\nbody { background: #111; }\n" +
				"### JAVASCRIPT CODE ###\ndocument.title = 'Portfolio';", nil
		},
	}

	svc := New(credits, textGen)

	result, err := svc.Generate(context.Background(), "user-1", "a dark portfolio site")

	require.NoError(t, err)
	assert.NotEmpty(t, result.HTMLCode)
	assert.NotEmpty(t, result.CSSCode)
	assert.Equal(t, "document.title = 'Portfolio';", result.JSCode)
	assert.Equal(t, 1, credits.calls)
	assert.Equal(t, 1, textGen.calls)
}

func TestGenerate_QuotaExceeded_NoOutboundCall(t *testing.T) {
	credits := &mockCreditStore{
		consumeFunc: func(_ context.Context, _ string, _ time.Time) (bool, error) {
			return false, nil
		},
	}
	textGen := &mockTextGenerator{}

	svc := New(credits, textGen)

	_, err := svc.Generate(context.Background(), "user-1", "anything")

	require.ErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, 0, textGen.calls, "no upstream call once the limit is reached")
}

func TestGenerate_CreditConsumedEvenWhenUpstreamFails(t *testing.T) {
	credits := &mockCreditStore{}
	textGen := &mockTextGenerator{
		generateTextFunc: func(_ context.Context, _, _ string) (string, error) {
			return "", &llm.UpstreamError{Kind: llm.KindStatus, Status: 502, Detail: "bad gateway"}
		},
	}

	svc := New(credits, textGen)

	_, err := svc.Generate(context.Background(), "user-1", "anything")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, 1, credits.calls, "the attempt is spent before the upstream call")

	var ue *llm.UpstreamError
	assert.ErrorAs(t, err, &ue)
}

func TestGenerate_CreditStoreFailure(t *testing.T) {
	credits := &mockCreditStore{
		consumeFunc: func(_ context.Context, _ string, _ time.Time) (bool, error) {
			return false, assert.AnError
		},
	}
	textGen := &mockTextGenerator{}

	svc := New(credits, textGen)

	_, err := svc.Generate(context.Background(), "user-1", "anything")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuotaExceeded)
	assert.Equal(t, 0, textGen.calls)
}

func TestGenerate_UpstreamDeadlineApplied(t *testing.T) {
	textGen := &mockTextGenerator{
		generateTextFunc: func(ctx context.Context, _, _ string) (string, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok, "upstream call must carry a deadline")
			assert.LessOrEqual(t, time.Until(deadline), defaultGenerationTimeout)

			return markerHTML + "\n<p>x</p>", nil
		},
	}

	svc := New(&mockCreditStore{}, textGen)

	_, err := svc.Generate(context.Background(), "user-1", "anything")
	require.NoError(t, err)
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt("a bakery landing page")

	assert.Contains(t, prompt, "USER REQUEST: a bakery landing page")
	assert.Contains(t, prompt, markerHTML)
	assert.Contains(t, prompt, markerCSS)
	assert.Contains(t, prompt, markerJS)

	// template text survives verbatim interpolation of odd descriptions
	weird := BuildUserPrompt("50% off %s sale")
	assert.Contains(t, weird, "50% off %s sale")
}

func TestModel(t *testing.T) {
	svc := New(&mockCreditStore{}, &mockTextGenerator{})
	assert.Equal(t, "mock-model", svc.Model())
}
