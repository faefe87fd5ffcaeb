package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/groundkit/internal/core/domain"
	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
	"github.com/custodia-labs/groundkit/internal/core/ports/driving"
	"github.com/custodia-labs/groundkit/internal/logger"
)

// Ensure QueryOrchestrator implements the interface.
var _ driving.QueryService = (*QueryOrchestrator)(nil)

// Ranking parameters.
const (
	// minQueryTokenLength drops short query tokens. Tokens of this
	// length or less carry no signal.
	minQueryTokenLength = 2

	// maxResults caps how many items one query returns.
	maxResults = 5

	// keywordWeight scores a query token present verbatim in the
	// item's keyword list.
	keywordWeight = 2.0

	// contentWeight scores a query token found inside the item content.
	contentWeight = 1.0

	// contextWeight scores a query token found inside the item's
	// provenance string.
	contextWeight = 1.5

	// usageBoost is the per-use multiplier increment. An item used ten
	// times scores double.
	usageBoost = 0.1
)

// Generation parameters.
const (
	answerMaxTokens   = 512
	answerTemperature = 0.3
)

// QueryOrchestrator answers free-text queries from the knowledge store.
// The generator and prompt store are optional; without them Query still
// works and Answer reports the generator as unavailable.
type QueryOrchestrator struct {
	store     driven.KnowledgeStore
	generator driven.Generator
	prompts   driven.PromptStore
}

// NewQueryOrchestrator creates a new query orchestrator.
// Generator and prompts may be nil; Answer then returns
// domain.ErrGeneratorUnavailable.
func NewQueryOrchestrator(
	store driven.KnowledgeStore,
	generator driven.Generator,
	prompts driven.PromptStore,
) *QueryOrchestrator {
	return &QueryOrchestrator{
		store:     store,
		generator: generator,
		prompts:   prompts,
	}
}

// scoredItem pairs an item with its ranking score.
type scoredItem struct {
	item  domain.KnowledgeItem
	score float64
}

// Query ranks the tenant's knowledge items against the query text.
//
// Ranking never errors on unmatched input: an empty query, an empty
// tenant and a query matching nothing all degrade to an empty response
// so the downstream assistant always gets a well-formed result.
func (o *QueryOrchestrator) Query(ctx context.Context, tenantID, text string) (*domain.ContextualResponse, error) {
	items, err := o.store.ListItems(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list knowledge items: %w", err)
	}

	if len(items) == 0 {
		return &domain.ContextualResponse{
			Items:      nil,
			Confidence: 0,
			Source:     domain.SourceNone,
			Reasoning:  "no knowledge for this tenant",
		}, nil
	}

	tokens := queryTokens(text)
	scored := scoreItems(items, tokens)

	if len(scored) == 0 {
		return &domain.ContextualResponse{
			Items:      nil,
			Confidence: 0,
			Source:     domain.SourceNone,
			Reasoning:  "no relevant knowledge found",
		}, nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	selected := make([]domain.KnowledgeItem, len(scored))
	ids := make([]string, len(scored))
	var confidenceSum float64
	for i, s := range scored {
		selected[i] = s.item
		ids[i] = s.item.ID
		confidenceSum += float64(s.item.Confidence)
	}

	// Boost items that proved useful. The returned copies keep their
	// pre-bump counts; the next query sees the incremented ones.
	now := time.Now()
	if err := o.store.RecordUsage(ctx, tenantID, ids, now); err != nil {
		return nil, fmt.Errorf("record usage: %w", err)
	}

	logger.Debug("Query for tenant %s matched %d items", tenantID, len(selected))

	return &domain.ContextualResponse{
		Items:      selected,
		Confidence: domain.NewConfidence(confidenceSum / float64(len(selected))),
		Source:     domain.SourceKnowledgeBase,
		Reasoning:  fmt.Sprintf("found %d relevant knowledge items", len(selected)),
	}, nil
}

// Answer runs Query and hands the ranked items to the generator.
func (o *QueryOrchestrator) Answer(ctx context.Context, tenantID, text string) (string, *domain.ContextualResponse, error) {
	if o.generator == nil {
		return "", nil, domain.ErrGeneratorUnavailable
	}

	response, err := o.Query(ctx, tenantID, text)
	if err != nil {
		return "", nil, err
	}

	payload := BuildGroundingPayload(response)
	prompt := o.groundedPrompt(payload, text)

	answer, err := o.generator.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", nil, fmt.Errorf("generate answer: %w", err)
	}

	return strings.TrimSpace(answer), response, nil
}

// Stats summarises the tenant's knowledge base.
func (o *QueryOrchestrator) Stats(ctx context.Context, tenantID string) (*domain.KnowledgeStats, error) {
	if tenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	return o.store.Stats(ctx, tenantID)
}

// Wipe removes every document and knowledge item owned by the tenant.
func (o *QueryOrchestrator) Wipe(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return domain.ErrInvalidInput
	}

	if err := o.store.Clear(ctx, tenantID); err != nil {
		return fmt.Errorf("clear tenant knowledge: %w", err)
	}
	logger.Info("Wiped all knowledge for tenant %s", tenantID)
	return nil
}

// BuildGroundingPayload serialises a query response for a text
// generator: an ordered list of content+context pairs preserving the
// ranking order, plus the aggregate confidence.
func BuildGroundingPayload(response *domain.ContextualResponse) driven.GroundingPayload {
	entries := make([]driven.GroundingEntry, len(response.Items))
	for i, item := range response.Items {
		entries[i] = driven.GroundingEntry{
			Content: item.Content,
			Context: item.Context,
		}
	}
	return driven.GroundingPayload{
		Entries:    entries,
		Confidence: response.Confidence,
	}
}

// groundedPrompt formats the grounding payload into the generator
// prompt using the configured template.
func (o *QueryOrchestrator) groundedPrompt(payload driven.GroundingPayload, question string) string {
	template := defaultGroundedAnswerPrompt
	if o.prompts != nil {
		loaded, err := o.prompts.Load(driven.PromptGroundedAnswer)
		if err == nil {
			template = loaded
		}
	}

	var entries strings.Builder
	if len(payload.Entries) == 0 {
		entries.WriteString("(no knowledge entries matched)")
	}
	for i, entry := range payload.Entries {
		if i > 0 {
			entries.WriteString("\n\n")
		}
		fmt.Fprintf(&entries, "%d. %s", i+1, entry.Content)
		if entry.Context != "" {
			fmt.Fprintf(&entries, "\n   Source: %s", entry.Context)
		}
	}

	return fmt.Sprintf(template, entries.String(), question)
}

// defaultGroundedAnswerPrompt is the fallback when no PromptStore is
// configured.
const defaultGroundedAnswerPrompt = `Answer the question using ONLY the knowledge entries below.
Each entry carries a context line describing its source document.
If the entries do not contain the answer, say so plainly instead of guessing.

Knowledge entries:
%s

Question: %s
Answer:`

// queryTokens splits the query on whitespace and drops tokens too
// short to carry signal. Tokens are lower-cased for case-insensitive
// matching.
func queryTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > minQueryTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// scoreItems computes ranking scores and drops items that match
// nothing.
func scoreItems(items []domain.KnowledgeItem, tokens []string) []scoredItem {
	var scored []scoredItem
	for i := range items {
		score := scoreItem(&items[i], tokens)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredItem{item: items[i], score: score})
	}
	return scored
}

// scoreItem computes the raw token-match score, then multiplies by the
// item's confidence and its usage boost.
func scoreItem(item *domain.KnowledgeItem, tokens []string) float64 {
	content := strings.ToLower(item.Content)
	context := strings.ToLower(item.Context)

	keywords := make(map[string]struct{}, len(item.Keywords))
	for _, kw := range item.Keywords {
		keywords[strings.ToLower(kw)] = struct{}{}
	}

	var raw float64
	for _, token := range tokens {
		if _, ok := keywords[token]; ok {
			raw += keywordWeight
		}
		if strings.Contains(content, token) {
			raw += contentWeight
		}
		if strings.Contains(context, token) {
			raw += contextWeight
		}
	}

	return raw * float64(item.Confidence) * (1 + usageBoost*float64(item.UsageCount))
}
