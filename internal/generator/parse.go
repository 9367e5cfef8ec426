package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

// ParseFragment decodes model output into a fragment. Only a non-object
// document is an error. Everything else that deviates from the schema is
// dropped and described in the returned issues:
//   - missing "colors" yields no colours and no issue;
//   - "colors" that is not an object yields no colours;
//   - colour entries that are unknown slots, non-strings or blank are dropped;
//   - "name" or "icon" of the wrong type are ignored.
func ParseFragment(text string) (theme.Fragment, []string, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &doc); err != nil {
		return theme.Fragment{}, nil, skinerrors.NewGenerationError(skinerrors.ReasonMalformedResponse, fmt.Errorf("decode model output: %w", err))
	}
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return theme.Fragment{}, nil, skinerrors.NewGenerationError(skinerrors.ReasonMalformedResponse, fmt.Errorf("model output is %s, want object", kindOf(doc)))
	}

	var (
		fragment theme.Fragment
		issues   []string
	)

	fragment.Name, issues = optionalString(obj, "name", issues)
	fragment.Icon, issues = optionalString(obj, "icon", issues)
	fragment.Colors = map[theme.Slot]string{}

	raw, present := obj["colors"]
	if !present || raw == nil {
		return fragment, issues, nil
	}
	colors, ok := raw.(map[string]interface{})
	if !ok {
		issues = append(issues, fmt.Sprintf("colors: expected object, got %s", kindOf(raw)))
		return fragment, issues, nil
	}

	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		slot, known := theme.ParseSlot(key)
		if !known {
			issues = append(issues, fmt.Sprintf("colors.%s: unknown slot", key))
			continue
		}
		value, isString := colors[key].(string)
		if !isString {
			issues = append(issues, fmt.Sprintf("colors.%s: expected string, got %s", key, kindOf(colors[key])))
			continue
		}
		if strings.TrimSpace(value) == "" {
			issues = append(issues, fmt.Sprintf("colors.%s: blank value", key))
			continue
		}
		fragment.Colors[slot] = value
	}

	return fragment, issues, nil
}

func optionalString(obj map[string]interface{}, key string, issues []string) (string, []string) {
	raw, present := obj[key]
	if !present || raw == nil {
		return "", issues
	}
	s, ok := raw.(string)
	if !ok {
		return "", append(issues, fmt.Sprintf("%s: expected string, got %s", key, kindOf(raw)))
	}
	return strings.TrimSpace(s), issues
}

// stripCodeFence removes a surrounding Markdown fence such as ```json ... ```.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	body := strings.TrimPrefix(trimmed, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

func kindOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
