package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kulhunter/eventis-backend/internal/models"
)

const (
	maxNameLen        = 80
	maxDescriptionLen = 150

	fallbackName        = "Evento sin título"
	fallbackDescription = "Sin descripción."
	fallbackLocation    = "Por confirmar"
)

// Classifier decides whether a candidate is a real, future, actionable event
// and rewrites it into the canonical shape.
type Classifier struct {
	model TextGenerator
}

func NewClassifier(model TextGenerator) *Classifier {
	return &Classifier{model: model}
}

// classifyReply is the JSON object the model is instructed to answer with.
// Budget is a pointer so an absent field can default to "unknown".
type classifyReply struct {
	IsEvent     bool   `json:"isEvent"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Budget      *int   `json:"budget"`
	PlanType    string `json:"planType"`
	SourceURL   string `json:"sourceUrl"`
}

// Classify sends one candidate through the model. It returns the canonical
// Event on acceptance, nil when the model rejects the candidate or its reply
// cannot be parsed, and a non-nil error only for vendor failures
// (ErrQuotaExceeded among them).
func (c *Classifier) Classify(ctx context.Context, raw models.RawCandidate) (*models.Event, error) {
	reply, err := c.model.Generate(ctx, BuildClassifyPrompt(raw))
	if err != nil {
		return nil, err
	}

	obj, ok := ExtractJSONObject(reply)
	if !ok {
		return nil, nil
	}

	var parsed classifyReply
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil, nil
	}
	if !parsed.IsEvent {
		return nil, nil
	}

	return c.toEvent(parsed, raw), nil
}

// toEvent enforces the field caps and defaults on an accepted reply. The model
// is not trusted to honor its own contract.
func (c *Classifier) toEvent(parsed classifyReply, raw models.RawCandidate) *models.Event {
	name := parsed.Name
	if name == "" || runeLen(name) > maxNameLen {
		name = truncateRunes(raw.Name, maxNameLen)
		if name == "" {
			name = fallbackName
		}
	}

	description := parsed.Description
	if description == "" || runeLen(description) > maxDescriptionLen {
		description = truncateRunes(raw.Description, maxDescriptionLen)
		if description == "" {
			description = fallbackDescription
		}
	}

	location := parsed.Location
	if location == "" {
		location = raw.Location
	}
	if location == "" {
		location = fallbackLocation
	}

	date := parsed.Date
	if date == "" {
		date = models.DateUnknown
	}

	budget := models.BudgetUnknown
	if parsed.Budget != nil && models.ValidBudget(*parsed.Budget) {
		budget = *parsed.Budget
	}

	planType := parsed.PlanType
	if !models.ValidPlanType(planType) {
		planType = "cualquiera"
	}

	sourceURL := parsed.SourceURL
	if sourceURL == "" {
		sourceURL = raw.SourceURL
	}

	return &models.Event{
		Name:        name,
		Description: description,
		ImageURL:    raw.ImageURL,
		SourceURL:   sourceURL,
		City:        location,
		Location:    location,
		Date:        date,
		Budget:      budget,
		PlanType:    planType,
	}
}

// ExtractJSONObject returns the first balanced {…} substring of s. The model
// sometimes wraps its JSON in prose or markdown fences; tolerating that is
// deliberate.
func ExtractJSONObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}

		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	return "", false
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ShortName truncates a candidate name for log lines.
func ShortName(s string) string {
	const max = 50
	if runeLen(s) <= max {
		return s
	}
	return fmt.Sprintf("%s...", truncateRunes(s, max))
}
