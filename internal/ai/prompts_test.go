package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kulhunter/eventis-backend/internal/models"
)

func TestRenderBudget(t *testing.T) {
	tests := []struct {
		budget int
		want   string
	}{
		{0, "Gratis"},
		{-1, "Precio no especificado"},
		{10, "Hasta $10 USD"},
		{51, "Hasta $51 USD"},
	}
	for _, tt := range tests {
		if got := RenderBudget(tt.budget); got != tt.want {
			t.Errorf("RenderBudget(%d) = %q, want %q", tt.budget, got, tt.want)
		}
	}
}

func TestBuildRecommendPromptCapsEvents(t *testing.T) {
	var events []models.Event
	for i := 0; i < 30; i++ {
		events = append(events, models.Event{
			Name:     fmt.Sprintf("Evento %02d", i),
			Date:     models.DateUnknown,
			Budget:   0,
			PlanType: "cualquiera",
		})
	}

	prompt := BuildRecommendPrompt("¿qué hay este finde?", events)

	if !strings.Contains(prompt, "Evento 14") {
		t.Error("expected the 15th event in the prompt")
	}
	if strings.Contains(prompt, "Evento 15") {
		t.Error("expected events beyond the first 15 excluded")
	}
	if !strings.Contains(prompt, "¿qué hay este finde?") {
		t.Error("expected the user question embedded in the prompt")
	}
	if !strings.Contains(prompt, "Gratis") {
		t.Error("expected budgets rendered for humans")
	}
}

func TestBuildRecommendPromptEmptyList(t *testing.T) {
	prompt := BuildRecommendPrompt("¿Qué hay hoy?", nil)
	if !strings.Contains(prompt, "No hay eventos específicos cargados") {
		t.Error("expected the empty-list notice in the prompt")
	}
}

func TestBuildClassifyPromptIncludesRawFields(t *testing.T) {
	raw := models.RawCandidate{
		Name:        "Concierto de jazz",
		Description: "Una noche de improvisación.",
		SourceURL:   "https://ev/jazz",
		Location:    "GAM, Santiago",
		RawDate:     "2099-05-01",
	}

	prompt := BuildClassifyPrompt(raw)
	for _, field := range []string{raw.Name, raw.Description, raw.SourceURL, raw.Location, raw.RawDate} {
		if !strings.Contains(prompt, field) {
			t.Errorf("expected prompt to contain %q", field)
		}
	}

	empty := BuildClassifyPrompt(models.RawCandidate{Name: "X", SourceURL: "https://ev/x"})
	if !strings.Contains(empty, "No especificado") {
		t.Error("expected absent fields rendered as 'No especificado'")
	}
}
