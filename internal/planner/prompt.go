package planner

import (
	"fmt"
	"strings"

	"github.com/tripreverie/backend/internal/domain"
)

// systemPrompt pins the generator to its concierge role and the exact JSON
// shape the pipeline parses. The schema is spelled out literally because the
// extraction step depends on the "tripPlan" wrapper being present.
const systemPrompt = `You are TripReverie's travel concierge. From the trip brief you receive,
produce a complete day-by-day itinerary as a single JSON object with this exact shape:

{
  "tripPlan": {
    "overview": "two or three sentences setting the tone of the trip",
    "itinerary": [
      {
        "day": "Day 1",
        "date": "YYYY-MM-DD",
        "theme": "short theme for the day",
        "accommodation": "where the traveller sleeps that night",
        "activities": ["at least two concrete activities"],
        "diningSuggestions": ["at least one named place or dish"],
        "notes": "optional practical note"
      }
    ],
    "packingSuggestions": ["items worth packing"],
    "tips": ["local tips"]
  }
}

Emit one itinerary entry per calendar day of the trip, dates in order starting
at the start date. Respect every must-have and avoid every deal-breaker.
Keep the plan realistic for the stated budget. Output only the JSON object.`

// BuildPrompt renders the generation instruction for req.
// The system message carries the role and schema; the user message carries
// the brief itself.
func BuildPrompt(req domain.TripRequest) (system, user string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "Desired feeling: %s\n", req.Feeling)
	fmt.Fprintf(&b, "Vibe: %s\n", req.Vibe)
	fmt.Fprintf(&b, "Travelers: %s\n", req.TravelerType)
	fmt.Fprintf(&b, "Budget per person: $%d USD\n", req.BudgetPerPerson)
	fmt.Fprintf(&b, "Dates: %s to %s (%d days)\n",
		req.StartDate.Format(domain.DateLayout),
		req.EndDate.Format(domain.DateLayout),
		req.Days(),
	)
	if len(req.MustHaves) > 0 {
		fmt.Fprintf(&b, "Must-haves: %s\n", strings.Join(req.MustHaves, "; "))
	}
	if len(req.DealBreakers) > 0 {
		fmt.Fprintf(&b, "Deal-breakers: %s\n", strings.Join(req.DealBreakers, "; "))
	}

	return systemPrompt, b.String()
}
