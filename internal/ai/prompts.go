package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kulhunter/eventis-backend/internal/models"
)

// PromptTemplates contains the prompt templates the pipeline sends to the model
var PromptTemplates = struct {
	Classify  string
	Recommend string
}{
	Classify: `Analiza el siguiente contenido que podría ser un evento público y accionable en Chile.
Para que sea un evento válido, DEBE ser una actividad a la que una persona pueda asistir, participar o ver (no una noticia, un comunicado de prensa, un artículo, un llamado a la acción genérico, una reapertura de instalaciones, una demolición, un balance municipal, un concurso o un programa continuo).

Si el contenido describe un EVENTO VÁLIDO, y si tiene una FECHA o un PERÍODO CLARO y una UBICACIÓN (física o 'Online') CLARA, extrae la siguiente información.

Si NO es un evento válido, o si no cumple con los criterios de FECHA/UBICACIÓN CLARA o no se puede extraer la información clave, responde SOLAMENTE con un JSON: {"isEvent": false}.

Si es un evento válido, responde SOLAMENTE con un JSON en este formato:
{
  "isEvent": true,
  "name": "Nombre conciso y atractivo del evento (ej. Concierto de Jazz, Exposición de Arte). Máximo 80 caracteres.",
  "description": "Descripción breve y clara del evento, explicando qué es y por qué es interesante. Máximo 150 caracteres. Evita frases como 'click aquí', 'más información', 'lee el artículo completo'.",
  "location": "Ubicación específica del evento (ej. 'Parque O'Higgins, Santiago', 'Online', 'Teatro Municipal de Valparaíso'). SIEMPRE debe ser un lugar físico o 'Online'. Si es un lugar muy genérico como solo 'Santiago' o 'Nacional', intenta ser más específico. Si no hay ubicación clara, pon 'Por confirmar'.",
  "date": "Fecha del evento en formato AAAA-MM-DD (ej. '2025-08-15'). Si es un rango de fechas, pon la fecha de inicio. Si no hay fecha clara o es evento continuo, pon 'Sin fecha'.",
  "budget": 0 | 10 | 20 | 30 | 40 | 50 | 51, // 0 para Gratis, -1 para precio desconocido, 10 para <=10 USD, 20 para <=20 USD, etc., 51 para >50 USD.
  "planType": "solo" | "pareja" | "grupo" | "familiar" | "cualquiera", // Cómo se disfruta mejor el evento
  "sourceUrl": "URL original del evento"
}

Contenido a analizar:
Nombre Original: %s
Descripción Original: %s
URL Original: %s
Ubicación Original (si aplica): %s
Fecha Original (si aplica): %s
`,
	Recommend: `Eres un asistente amable, útil y conciso para recomendar eventos en Chile.
El usuario pregunta: "%s".

Aquí tienes una lista de eventos disponibles que podrían ser relevantes para la recomendación del usuario (si la lista está vacía, no hay eventos específicos cargados en este momento):
%s

Basado en la pregunta del usuario y los eventos disponibles:
1. Si la pregunta es sobre un tipo de evento o característica (ej. "eventos gratis", "conciertos en Santiago", "planes para familia"), intenta recomendar 1-3 eventos *específicos* de la lista proporcionada. Si no hay ninguno que coincida, díselo amablemente.
2. Si la pregunta es muy general ("¿qué hay hoy?", "¿qué me recomiendas?"), sugiere que el usuario use los filtros de la página o que especifique más qué tipo de plan busca.
3. Si el usuario pregunta algo no relacionado con eventos, o algo que no puedes responder, díselo amablemente.
4. Mantén tus respuestas concisas (máx. 200 caracteres) y amigables. No inventes eventos que no estén en la lista. Si no puedes responder con los eventos dados, di que no encontraste un evento específico para su solicitud y sugiere usar los filtros o preguntar de otra manera.`,
}

// maxContextEvents caps how many of the caller's events reach the chatbot prompt.
const maxContextEvents = 15

// eventContext is the projection of an Event forwarded to the chatbot, with
// the budget rendered for humans.
type eventContext struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Budget      string `json:"budget"`
	PlanType    string `json:"planType"`
}

// BuildClassifyPrompt renders the classification prompt for one candidate.
func BuildClassifyPrompt(raw models.RawCandidate) string {
	return fmt.Sprintf(PromptTemplates.Classify,
		orUnspecified(raw.Name),
		orUnspecified(raw.Description),
		orUnspecified(raw.SourceURL),
		orUnspecified(raw.Location),
		orUnspecified(raw.RawDate))
}

// BuildRecommendPrompt renders the chatbot prompt over the user's question and
// at most maxContextEvents of their current event list.
func BuildRecommendPrompt(question string, events []models.Event) string {
	if len(events) > maxContextEvents {
		events = events[:maxContextEvents]
	}

	projected := make([]eventContext, 0, len(events))
	for _, e := range events {
		projected = append(projected, eventContext{
			Name:        e.Name,
			Description: e.Description,
			Location:    e.Location,
			Date:        e.Date,
			Budget:      RenderBudget(e.Budget),
			PlanType:    e.PlanType,
		})
	}

	eventsBlock := "No hay eventos específicos cargados en la lista actual. Puedes sugerirle al usuario que use los filtros de la página."
	if len(projected) > 0 {
		if data, err := json.MarshalIndent(projected, "", "  "); err == nil {
			eventsBlock = string(data)
		}
	}

	return fmt.Sprintf(PromptTemplates.Recommend, strings.TrimSpace(question), eventsBlock)
}

// RenderBudget formats a budget bucket for humans.
func RenderBudget(budget int) string {
	switch budget {
	case 0:
		return "Gratis"
	case models.BudgetUnknown:
		return "Precio no especificado"
	default:
		return fmt.Sprintf("Hasta $%d USD", budget)
	}
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "No especificado"
	}
	return s
}
