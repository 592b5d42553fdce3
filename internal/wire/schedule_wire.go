package wire

import (
	"vaccination-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSchedule(r chi.Router, scheduleHandler *adaptor.ScheduleHandler) {
	r.Route("/api/schedules", func(r chi.Router) {
		// POST /api/schedules - Book a vaccination appointment
		r.Post("/", scheduleHandler.ScheduleVaccination)

		// GET /api/schedules/{scheduleCode} - Read a booking back by its code
		r.Get("/{scheduleCode}", scheduleHandler.GetSchedule)

		// PUT /api/schedules/{scheduleCode}/confirm - Set the confirmed flag
		r.Put("/{scheduleCode}/confirm", scheduleHandler.ConfirmSchedule)

		// PUT /api/schedules/{scheduleCode}/applied - Set the applied flag
		r.Put("/{scheduleCode}/applied", scheduleHandler.MarkApplied)
	})
}
