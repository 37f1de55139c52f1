package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrForbidden is returned when the requester is neither the owner of the
// resource nor an administrator. Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrBriefIncomplete is returned by TripDraft.Snapshot when one of the five
// required brief fields (destination, feeling, vibe, dates, email) is missing.
// Generation must not be attempted until the draft is complete.
var ErrBriefIncomplete = errors.New("trip brief incomplete")

// ErrGenerationMalformed is returned by the planner when the generator's raw
// output contains no locatable JSON payload, or the payload fails to parse.
// Never retried automatically; re-running generation is a fresh user action
// because each call bills against the external service.
var ErrGenerationMalformed = errors.New("generator output malformed")

// ErrGenerationTimeout is returned when the generator call exceeds the
// configured deadline. Distinct from ErrGenerationMalformed so the UI can
// tell "the service hung" apart from "the service answered garbage".
var ErrGenerationTimeout = errors.New("generation timed out")

// ErrSchemaMissingField is returned by the itinerary validator when a
// required field (overview, days, a day's activities or dining suggestions)
// is absent or empty. The wrapped message names the offending field and day.
var ErrSchemaMissingField = errors.New("itinerary missing required field")

// ErrDayCountMismatch is returned when the generated day count does not equal
// the inclusive span between the requested start and end dates. The itinerary
// is rejected whole; it is never truncated or padded.
var ErrDayCountMismatch = errors.New("itinerary day count mismatch")

// ErrDayOrderingViolation is returned when day dates are not monotonically
// non-decreasing starting at the requested start date.
var ErrDayOrderingViolation = errors.New("itinerary days out of order")

// ErrPersistenceFailure is returned when the store is unreachable or a write
// is rejected. A generated itinerary is kept as an unsaved draft so the save
// can be retried without paying for a second generation.
var ErrPersistenceFailure = errors.New("persistence failure")

// ErrDraftExpired is returned when a save references a draft id that is no
// longer in the draft cache (TTL elapsed or process restarted).
var ErrDraftExpired = errors.New("itinerary draft expired")

// ErrInvalidRating is returned when a review rating falls outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ErrEmptyComment is returned when a review comment is empty after trimming.
var ErrEmptyComment = errors.New("comment is required")
