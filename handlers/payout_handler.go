package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
	"github.com/mainamike/course_marketplace/payouts"
	"github.com/mainamike/course_marketplace/services"
)

var payoutService *payouts.Service

// InitPayoutHandler wires the payout engine built in main into the
// handler layer.
func InitPayoutHandler(svc *payouts.Service) {
	payoutService = svc
}

func GetUnpaidEntries(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	var entries []models.UnpaidEntry
	if err := database.DB.Preload("Course").Preload("Student").
		Where("instructor_id = ? AND paid = false", instructorID).
		Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(entries)
}

func GetUnpaidSummary(c *fiber.Ctx) error {
	summary, err := payoutService.UnpaidByInstructor()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(summary)
}

func GetUnpaidDetails(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	var instructor models.Instructor
	if err := database.DB.First(&instructor, "id = ?", instructorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found"})
	}

	summary, err := payoutService.Summarize(instructorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"payouts": summary.Entries,
		"summary": fiber.Map{
			"totalAmount":      summary.TotalAmount,
			"commissionRate":   summary.CommissionRate,
			"instructorAmount": summary.InstructorAmount,
			"platformCut":      summary.PlatformCut,
		},
		"instructorName":  instructor.Name,
		"stripeAccountId": instructor.StripeAccountID,
	})
}

func ProcessPayout(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	settlement, err := payoutService.Disburse(c.Context(), instructorID)
	if err != nil {
		var rejected *payouts.TransferRejectedError
		var inconsistent *payouts.ConsistencyError

		switch {
		case errors.Is(err, payouts.ErrInstructorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found"})
		case errors.Is(err, payouts.ErrNothingToPay):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No unpaid entries found for this instructor"})
		case errors.Is(err, payouts.ErrReconciliationRequired):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &rejected):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": rejected.Reason})
		case errors.Is(err, payouts.ErrTransferTimeout):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &inconsistent):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process payout"})
		}
	}

	go services.GenerateSettlementStatement(*settlement, settlement.Instructor)

	return c.JSON(fiber.Map{
		"instructorName":   settlement.Instructor.Name,
		"accountNumber":    settlement.Instructor.AccountNumber,
		"totalAmount":      settlement.Amount,
		"commissionRate":   settlement.CommissionRate,
		"instructorAmount": settlement.InstructorAmount,
		"platformCut":      settlement.PlatformCut,
		"paymentId":        settlement.TransferRef,
	})
}

func GetPaidPayouts(c *fiber.Ctx) error {
	var settlements []models.Settlement
	err := database.DB.
		Preload("Instructor").
		Preload("Entries.Student").
		Preload("Entries.Course").
		Order("paid_at DESC").
		Find(&settlements).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	formatted := make([]fiber.Map, 0, len(settlements))
	for _, s := range settlements {
		transactions := make([]fiber.Map, 0, len(s.Entries))
		for _, e := range s.Entries {
			transactions = append(transactions, fiber.Map{
				"studentName":  e.Student.Name,
				"studentEmail": e.Student.Email,
				"courseName":   e.Course.Title,
				"amount":       e.Amount,
				"date":         e.CreatedAt,
			})
		}
		formatted = append(formatted, fiber.Map{
			"id":               s.ID,
			"instructorName":   s.Instructor.Name,
			"instructorEmail":  s.Instructor.Email,
			"totalAmount":      s.Amount,
			"instructorAmount": s.InstructorAmount,
			"platformCut":      s.PlatformCut,
			"commissionRate":   s.CommissionRate,
			"paidAt":           s.PaidAt,
			"transferRef":      s.TransferRef,
			"transactions":     transactions,
		})
	}

	return c.JSON(formatted)
}

func GetPayoutBatches(c *fiber.Ctx) error {
	var batches []models.PayoutBatch
	err := database.DB.
		Preload("Instructor").
		Preload("Settlement.Entries.Student").
		Preload("Settlement.Entries.Course").
		Order("payout_at DESC").
		Find(&batches).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(batches)
}

func GetInstructorBatches(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	var batches []models.PayoutBatch
	err = database.DB.
		Preload("Instructor").
		Preload("Settlement.Entries.Student").
		Preload("Settlement.Entries.Course").
		Where("instructor_id = ?", instructorID).
		Order("payout_at DESC").
		Find(&batches).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(batches)
}

func GetPayoutSummary(c *fiber.Ctx) error {
	rangeName := c.Query("range", "all")

	summary, err := payoutService.Summary(rangeName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payout summary"})
	}

	return c.JSON(fiber.Map{
		"totalCollected":         summary.TotalCollected,
		"totalPaidToInstructors": summary.TotalPaidToInstructors,
		"totalUnpaid":            summary.EstimatedUnpaid,
		"platformProfit":         summary.PlatformProfit,
	})
}
