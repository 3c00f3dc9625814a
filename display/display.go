// Package display renders API response bodies to the terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/KimSchm/gh-models-cli/model"
	"github.com/tidwall/gjson"
)

// Placeholder substitutes for any field missing from the API response.
const Placeholder = "N/A"

// Completion prints the assistant message, the finish reason and the token
// usage counters from a raw chat-completion response body. Absent fields,
// malformed JSON and an empty body all render as placeholders; nothing here
// fails.
func Completion(w io.Writer, body []byte) {
	doc := gjson.ParseBytes(body)

	fmt.Fprintln(w, field(doc, "choices.0.message.content"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Finish reason:     %s\n", field(doc, "choices.0.finish_reason"))
	fmt.Fprintf(w, "Completion tokens: %s\n", field(doc, "usage.completion_tokens"))
	fmt.Fprintf(w, "Prompt tokens:     %s\n", field(doc, "usage.prompt_tokens"))
	fmt.Fprintf(w, "Total tokens:      %s\n", field(doc, "usage.total_tokens"))
}

func field(doc gjson.Result, path string) string {
	if value := doc.Get(path); value.Exists() {
		return value.String()
	}
	return Placeholder
}

// Catalog prints one line per entry of the raw model catalog array: id,
// publisher and rate-limit tier.
func Catalog(w io.Writer, body []byte) error {
	var entries []model.CatalogModel
	if err := json.Unmarshal(body, &entries); err != nil {
		return fmt.Errorf("failed to parse model catalog: %w", err)
	}

	for _, entry := range entries {
		tier := entry.RateLimitTier
		if tier == "" {
			tier = Placeholder
		}
		fmt.Fprintf(w, "%-48s %-24s %s\n", entry.ID, entry.Publisher, tier)
	}

	return nil
}
