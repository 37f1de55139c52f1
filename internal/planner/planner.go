// Package planner turns a completed trip brief into a validated itinerary.
// It owns the three middle stages of the pipeline: building the generation
// instruction, making exactly one call to the external generator, and
// recovering + validating the structured plan from the raw text that comes
// back. No persistence lives here.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tripreverie/backend/internal/domain"
)

// Generator is the minimal surface of the external generative service.
// The production implementation is OpenAIGenerator; tests supply a stub.
type Generator interface {
	// Complete sends one system + user instruction pair and returns the raw
	// model output. Implementations must honor ctx cancellation.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client produces candidate itineraries from trip requests.
// It makes exactly one generator call per Generate invocation — no retries,
// no caching — because every call bills against the external service and its
// output is non-deterministic.
type Client struct {
	gen     Generator
	timeout time.Duration
}

// NewClient constructs a Client. timeout bounds each generator call; zero
// means no additional deadline beyond the caller's context.
func NewClient(gen Generator, timeout time.Duration) *Client {
	return &Client{gen: gen, timeout: timeout}
}

// payload is the wire shape the generator is instructed to emit.
// The itinerary lives under a "tripPlan" key so surrounding prose and the
// plan itself cannot be confused.
type payload struct {
	TripPlan domain.Itinerary `json:"tripPlan"`
}

// Generate builds the instruction from req, calls the generator once, and
// recovers a candidate itinerary from the raw output.
//
// The candidate has passed JSON-shape parsing only; callers must run
// ValidateItinerary before persisting or displaying it.
//
// Errors: domain.ErrGenerationTimeout when the deadline expires,
// domain.ErrGenerationMalformed when no payload can be recovered, and the
// transport error unchanged otherwise.
func (c *Client) Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	system, user := BuildPrompt(req)

	raw, err := c.gen.Complete(ctx, system, user)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.Itinerary{}, fmt.Errorf("planner.Client.Generate: %w", domain.ErrGenerationTimeout)
		}
		return domain.Itinerary{}, fmt.Errorf("planner.Client.Generate: %w", err)
	}

	doc, err := ExtractJSON(raw)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("planner.Client.Generate: %w: %v", domain.ErrGenerationMalformed, err)
	}

	var p payload
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return domain.Itinerary{}, fmt.Errorf("planner.Client.Generate: %w: %v", domain.ErrGenerationMalformed, err)
	}

	return p.TripPlan, nil
}
