package payouts

import "time"

// PeriodSummary is the platform-wide money view for a reporting window.
// EstimatedUnpaid uses each instructor's *current* commission rate; the
// entries have no settlement yet, so there is no snapshotted rate to
// read and the figure is an estimate by construction.
type PeriodSummary struct {
	Range                  string  `json:"range"`
	TotalCollected         float64 `json:"total_collected"`
	TotalPaidToInstructors float64 `json:"total_paid_to_instructors"`
	EstimatedUnpaid        float64 `json:"estimated_unpaid"`
	PlatformProfit         float64 `json:"platform_profit"`
}

// Summary computes the period report for "daily", "weekly", "monthly"
// or "all". Any other value is treated as "all".
func (s *Service) Summary(rangeName string) (*PeriodSummary, error) {
	return s.summaryAt(rangeName, time.Now().UTC())
}

func (s *Service) summaryAt(rangeName string, now time.Time) (*PeriodSummary, error) {
	start, end, bounded := reportWindow(rangeName, now)

	var startPtr, endPtr *time.Time
	if bounded {
		startPtr, endPtr = &start, &end
	}

	collected, err := s.store.SumPayments(startPtr, endPtr)
	if err != nil {
		return nil, err
	}

	paid, err := s.store.SumSettledInstructorAmount(startPtr, endPtr)
	if err != nil {
		return nil, err
	}

	// Unpaid entries are filtered by creation time and commission-adjusted
	// with the live rate.
	unpaidEntries, err := s.store.ListUnpaidCreatedBetween(startPtr, endPtr)
	if err != nil {
		return nil, err
	}

	var estimatedUnpaid float64
	for _, e := range unpaidEntries {
		rate := ResolveCommission(&e.Instructor)
		estimatedUnpaid += e.Amount * rate / 100
	}

	return &PeriodSummary{
		Range:                  rangeName,
		TotalCollected:         collected,
		TotalPaidToInstructors: paid,
		EstimatedUnpaid:        estimatedUnpaid,
		PlatformProfit:         collected - paid - estimatedUnpaid,
	}, nil
}

// reportWindow resolves a range name to a UTC half-open window
// [start, end). "weekly" starts on the Monday of the current ISO week.
func reportWindow(rangeName string, now time.Time) (start, end time.Time, bounded bool) {
	now = now.UTC()

	switch rangeName {
	case "daily":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 0, 1), true
	case "weekly":
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start = day.AddDate(0, 0, -(weekday - 1))
		return start, start.AddDate(0, 0, 7), true
	case "monthly":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
