// Package handler — export.go implements GET /trips/{tripID}/calendar.ics.
package handler

import "net/http"

// GetTripCalendar handles GET /trips/{tripID}/calendar.ics.
// It streams the trip's itinerary as an iCalendar document, one all-day
// event per planned day.
func (s *Server) GetTripCalendar(w http.ResponseWriter, r *http.Request) {
	who, ok := identity(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	cal, err := s.export.Calendar(r.Context(), tripID, who)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
	//nolint:errcheck — the response is already committed.
	w.Write([]byte(cal))
}
