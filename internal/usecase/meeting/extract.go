package meeting

import (
	"encoding/json"
	"fmt"
	"strings"
)

const extractionSystemPrompt = "You are an assistant that extracts action items from meeting transcripts. " +
	"Respond with a JSON array of objects, each with a \"description\" field and an optional " +
	"\"assigned_to\" field (null when nobody was assigned). Respond with JSON only, no prose."

// ActionItemDraft is one extracted action item before persistence
type ActionItemDraft struct {
	Description string  `json:"description"`
	AssignedTo  *string `json:"assigned_to"`
}

// stripJSONFences removes a markdown code fence wrapper if the model
// added one despite being asked for bare JSON.
func stripJSONFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// ParseActionItems decodes the model's extraction output. Items without
// a description are dropped rather than failing the whole batch.
func ParseActionItems(raw string) ([]ActionItemDraft, error) {
	cleaned := stripJSONFences(raw)
	if cleaned == "" {
		return nil, nil
	}

	var drafts []ActionItemDraft
	if err := json.Unmarshal([]byte(cleaned), &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse action items: %w", err)
	}

	out := drafts[:0]
	for _, d := range drafts {
		if strings.TrimSpace(d.Description) == "" {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}
