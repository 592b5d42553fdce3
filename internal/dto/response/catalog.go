package response

import (
	"vaccination-booking/internal/data/entity"
)

type BranchResponse struct {
	BranchCode string `json:"branch_code"`
	Name       string `json:"name"`
}

type VaccineResponse struct {
	VaccineCode string `json:"vaccine_code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TimeSlotResponse struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Helper converters
func BranchToResponse(branch *entity.Branch) BranchResponse {
	return BranchResponse{
		BranchCode: branch.BranchCode,
		Name:       branch.Name,
	}
}

func VaccineToResponse(vaccine *entity.Vaccine) VaccineResponse {
	return VaccineResponse{
		VaccineCode: vaccine.VaccineCode,
		Name:        vaccine.Name,
		Description: vaccine.Description,
	}
}

func TimeSlotToResponse(timeSlot *entity.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:        timeSlot.ID.String(),
		StartTime: timeSlot.StartTime.Format("15:04"),
		EndTime:   timeSlot.EndTime.Format("15:04"),
	}
}

func PaymentMethodToResponse(pm *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:   pm.ID.String(),
		Name: pm.Name,
	}
}
