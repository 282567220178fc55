package models

// RawCandidate is an unvalidated extraction from a source. It lives from fetch
// until the classification decision and is then discarded.
type RawCandidate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SourceURL   string `json:"sourceUrl"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Location    string `json:"location,omitempty"`
	RawDate     string `json:"rawDate,omitempty"`
}

// Event is a candidate that passed the classifier and is eligible for
// publication. ImageURL is carried in memory but stripped before publish.
type Event struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	SourceURL   string `json:"sourceUrl"`
	City        string `json:"city"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Budget      int    `json:"budget"`
	PlanType    string `json:"planType"`
}

// DateUnknown is the sentinel stored when the model finds no clear date.
const DateUnknown = "Sin fecha"

// BudgetUnknown marks an event whose price could not be determined.
const BudgetUnknown = -1

var validBudgets = map[int]bool{
	0: true, 10: true, 20: true, 30: true, 40: true, 50: true, 51: true, -1: true,
}

var validPlanTypes = map[string]bool{
	"solo": true, "pareja": true, "grupo": true, "familiar": true, "cualquiera": true,
}

// ValidBudget reports whether b belongs to the allowed bucketing
// (0 free, 10..50 inclusive upper bounds, 51 above the top bucket, -1 unknown).
func ValidBudget(b int) bool {
	return validBudgets[b]
}

// ValidPlanType reports whether p is one of the allowed plan types.
func ValidPlanType(p string) bool {
	return validPlanTypes[p]
}
