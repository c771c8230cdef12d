package payouts

import (
	"math"

	"github.com/mainamike/course_marketplace/models"
)

// DefaultCommissionRate is the platform-wide instructor share (percent)
// used when an instructor has no explicit rate configured.
const DefaultCommissionRate = 70

// ResolveCommission returns the commission rate for an instructor:
// the per-instructor override if set, else the platform default.
func ResolveCommission(instructor *models.Instructor) float64 {
	if instructor.CommissionRate > 0 {
		return instructor.CommissionRate
	}
	return DefaultCommissionRate
}

// Split divides a gross total between instructor and platform. The
// instructor share is truncated to whole cents, never rounded up, and
// the platform cut is always the remainder, so the two add back up to
// the total exactly.
func Split(totalAmount, commissionRate float64) (instructorAmount, platformCut float64) {
	totalCents := math.Round(totalAmount * 100)
	instructorCents := math.Floor(totalCents * commissionRate / 100)
	return instructorCents / 100, (totalCents - instructorCents) / 100
}
