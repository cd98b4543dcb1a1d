package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/docsift/docsift/core/recovery"
)

// classifyMaxTokens bounds classification responses, which are a single
// category name or a short list.
const classifyMaxTokens = 500

// defaultEntityTypes is the entity-type set used when the caller does not
// supply one.
var defaultEntityTypes = []string{"people", "organizations", "locations", "dates", "money", "products"}

// ExtractEntities extracts named entities from text, returning a mapping from
// entity type to the entities found. When no entityTypes are given,
// [defaultEntityTypes] is used.
//
// Unlike the record-shaped operations, the result is strongly typed, so an
// unrecoverable response surfaces as an error wrapping
// [recovery.ErrUnrecoverable] rather than a sentinel value.
func (e *Extractor) ExtractEntities(ctx context.Context, text string, entityTypes ...string) (map[string][]string, error) {
	types := entityTypes
	if len(types) == 0 {
		types = defaultEntityTypes
	}

	prompt := fmt.Sprintf(`Extract named entities from the following text and return them as a JSON object.

Entity types to extract: %s

Text: %s

Return ONLY a valid JSON object with entity types as keys and arrays of entities as values. Example format:
{
  "people": ["John Doe", "Jane Smith"],
  "organizations": ["Company A"],
  "locations": ["New York"],
  "dates": ["January 2024"],
  "money": ["$1,000"],
  "products": ["Product X"]
}`, strings.Join(types, ", "), text)

	content, err := e.Complete(ctx, prompt, 0)
	if err != nil {
		return nil, err
	}

	return recovery.ParseAs[map[string][]string](content)
}

// SummaryLength selects how long a summary should be.
type SummaryLength string

const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// SummaryStyle selects the writing style of a summary.
type SummaryStyle string

const (
	StyleParagraph SummaryStyle = "paragraph"
	StyleBullets   SummaryStyle = "bullets"
	StyleExecutive SummaryStyle = "executive"
)

// SummaryOptions tunes [Extractor.Summarize]. Zero values fall back to a
// medium-length paragraph summary with no particular focus.
type SummaryOptions struct {
	Length SummaryLength
	Style  SummaryStyle
	Focus  string
}

var lengthGuidelines = map[SummaryLength]string{
	LengthShort:  "2-3 sentences",
	LengthMedium: "1 paragraph (4-6 sentences)",
	LengthLong:   "2-3 paragraphs",
}

var styleInstructions = map[SummaryStyle]string{
	StyleParagraph: "Write in clear, concise paragraphs.",
	StyleBullets:   "Use bullet points for key information.",
	StyleExecutive: "Write as an executive summary with key takeaways.",
}

// Summarize produces a free-text summary of text. This is the one operation
// whose result is prose by design, so the completion is returned as-is (minus
// surrounding whitespace) without running recovery.
func (e *Extractor) Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error) {
	length, ok := lengthGuidelines[opts.Length]
	if !ok {
		length = lengthGuidelines[LengthMedium]
	}
	style, ok := styleInstructions[opts.Style]
	if !ok {
		style = styleInstructions[StyleParagraph]
	}

	focus := ""
	if opts.Focus != "" {
		focus = "\nFocus particularly on: " + opts.Focus
	}

	prompt := fmt.Sprintf(`Summarize the following text.

Length: %s
Style: %s%s

Text to summarize:
%s

Summary:`, length, style, focus, text)

	content, err := e.Complete(ctx, prompt, 0)
	if err != nil {
		return "", err
	}

	return trimmed(content), nil
}

// AnalyzeSentiment analyzes the sentiment and emotional tone of text. The
// result carries overall_sentiment, confidence, emotions, key_phrases, and
// reasoning fields; on recovery failure it is the parse-failure sentinel.
func (e *Extractor) AnalyzeSentiment(ctx context.Context, text string) (recovery.Record, error) {
	prompt := fmt.Sprintf(`Analyze the sentiment and emotional tone of the following text.

Text: %s

Return a JSON object with:
- overall_sentiment: "positive", "negative", or "neutral"
- confidence: 0.0 to 1.0
- emotions: list of detected emotions
- key_phrases: list of phrases that influenced the sentiment
- reasoning: brief explanation

Return ONLY valid JSON:`, text)

	content, err := e.Complete(ctx, prompt, 0)
	if err != nil {
		return nil, err
	}

	return e.recoverRecord(ctx, content)
}

// Classify assigns text to exactly one of the given categories. When the
// response cannot be recovered or carries no category, the empty string is
// returned rather than an error: classification callers expect a string
// result unconditionally.
func (e *Extractor) Classify(ctx context.Context, text string, categories []string) (string, error) {
	content, err := e.Complete(ctx, classifyPrompt(text, categories, false), classifyMaxTokens)
	if err != nil {
		return "", err
	}

	record, parseErr := recovery.ParseAs[recovery.Record](content)
	if parseErr != nil {
		return "", nil
	}

	category, _ := record["category"].(string)
	return category, nil
}

// ClassifyMulti assigns text to any number of the given categories. When the
// response cannot be recovered the empty slice is returned rather than an
// error.
func (e *Extractor) ClassifyMulti(ctx context.Context, text string, categories []string) ([]string, error) {
	content, err := e.Complete(ctx, classifyPrompt(text, categories, true), classifyMaxTokens)
	if err != nil {
		return nil, err
	}

	record, parseErr := recovery.ParseAs[recovery.Record](content)
	if parseErr != nil {
		return []string{}, nil
	}

	raw, _ := record["categories"].([]any)
	result := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result, nil
}

func classifyPrompt(text string, categories []string, multiLabel bool) string {
	instruction := "Choose only ONE category that best fits."
	if multiLabel {
		instruction = "The text can belong to multiple categories."
	}

	return fmt.Sprintf(`Classify the following text into one or more of these categories:
%s

%s

Text: %s

Return your answer as a JSON object:
{"categories": ["category1", "category2"]} for multi-label
OR
{"category": "category1"} for single-label

Return ONLY valid JSON:`, strings.Join(categories, ", "), instruction, text)
}

// ExtractKeyInformation extracts the named information types from text,
// returning a record keyed by information type. On recovery failure the
// result is the parse-failure sentinel.
func (e *Extractor) ExtractKeyInformation(ctx context.Context, text string, informationTypes []string) (recovery.Record, error) {
	prompt := fmt.Sprintf(`Extract the following information from the text:
%s

Text:
%s

Return the extracted information as a JSON object with the information types as keys.
Return ONLY valid JSON:`, strings.Join(informationTypes, ", "), text)

	content, err := e.Complete(ctx, prompt, 0)
	if err != nil {
		return nil, err
	}

	return e.recoverRecord(ctx, content)
}
