package copy

import (
	"encoding/json"
	"errors"
	"strings"

	"server/internal/domain"
)

const (
	variationSystemPrompt = "You are an expert marketing copywriter. Respond strictly with a flat JSON object mapping slot ids to replacement copy, for example {\"headline\":\"...\",\"cta\":\"...\"}. Keep every replacement short and punchy. Do not add keys beyond the slots you were given."
	designSystemPrompt    = "You are an expert graphic designer. You must output a JSON layout composition based on the user's prompt."
)

// decodeVariations parses a model response into the slot-id substitution
// map, tolerating code fences and surrounding prose.
func decodeVariations(raw string) (map[string]string, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, errors.New("empty variations payload")
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeDesign parses and validates a full design document from a model
// response.
func decodeDesign(raw string) (domain.DesignJSON, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return domain.DesignJSON{}, errors.New("empty design payload")
	}
	return domain.ParseDesignJSON([]byte(cleaned))
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

// userPromptWithBase appends the serialized base design to a prompt for the
// legacy bulk mode.
func userPromptWithBase(prompt string, base *domain.DesignJSON) (string, error) {
	if base == nil {
		return prompt, nil
	}
	encoded, err := json.Marshal(base)
	if err != nil {
		return "", err
	}
	return prompt + "\nBase Design: " + string(encoded), nil
}
