package wire

import (
	"vaccination-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/branches - List all branches
	r.Get("/api/branches", catalogHandler.GetBranches)

	// GET /api/branches/{branchCode}/vaccines - Vaccines offered by a branch
	r.Get("/api/branches/{branchCode}/vaccines", catalogHandler.GetVaccinesByBranch)

	// GET /api/payment-methods - List payment methods
	r.Get("/api/payment-methods", catalogHandler.GetPaymentMethods)

	// GET /api/timeslots/available - Free slots for a branch and date
	r.Get("/api/timeslots/available", catalogHandler.GetAvailableTimeSlots)
}
