package payouts

import (
	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/models"
)

// UnpaidSummary is the per-instructor drill-down: the unpaid entries
// plus the commission split that a disbursement at this moment would
// produce.
type UnpaidSummary struct {
	Entries          []models.UnpaidEntry `json:"entries"`
	TotalAmount      float64              `json:"total_amount"`
	CommissionRate   float64              `json:"commission_rate"`
	InstructorAmount float64              `json:"instructor_amount"`
	PlatformCut      float64              `json:"platform_cut"`
}

// InstructorUnpaid is one row of the grouped admin dashboard view. The
// split is deliberately left out; the summary only needs counts and
// gross totals, precision lives in the drill-down.
type InstructorUnpaid struct {
	InstructorID   uuid.UUID `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	CourseCount    int       `json:"course_count"`
	TotalAmount    float64   `json:"total_amount"`
	Status         string    `json:"status"`
}

// Summarize computes the unpaid totals and commission split for one
// instructor from the current ledger state.
func (s *Service) Summarize(instructorID uuid.UUID) (*UnpaidSummary, error) {
	instructor, err := s.store.GetInstructor(instructorID)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListUnpaid(instructorID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	rate := ResolveCommission(instructor)
	instructorAmount, platformCut := Split(total, rate)

	return &UnpaidSummary{
		Entries:          entries,
		TotalAmount:      total,
		CommissionRate:   rate,
		InstructorAmount: instructorAmount,
		PlatformCut:      platformCut,
	}, nil
}

// UnpaidByInstructor groups every unsettled ledger entry by instructor
// for the admin dashboard.
func (s *Service) UnpaidByInstructor() ([]InstructorUnpaid, error) {
	entries, err := s.store.ListAllUnpaid()
	if err != nil {
		return nil, err
	}
	return groupUnpaid(entries), nil
}

func groupUnpaid(entries []models.UnpaidEntry) []InstructorUnpaid {
	index := make(map[uuid.UUID]int)
	summary := make([]InstructorUnpaid, 0)

	for _, e := range entries {
		i, ok := index[e.InstructorID]
		if !ok {
			i = len(summary)
			index[e.InstructorID] = i
			summary = append(summary, InstructorUnpaid{
				InstructorID:   e.InstructorID,
				InstructorName: e.Instructor.Name,
				Status:         "Pending",
			})
		}
		summary[i].CourseCount++
		summary[i].TotalAmount += e.Amount
	}

	return summary
}
