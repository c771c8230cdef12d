package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mainamike/course_marketplace/handlers"
	"github.com/mainamike/course_marketplace/middleware"
)

func PayoutRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payouts := api.Group("/payouts", middleware.Protected(), middleware.AdminRequired())

	payouts.Get("/unpaid-summary", handlers.GetUnpaidSummary)
	payouts.Get("/unpaid/:instructorId", handlers.GetUnpaidEntries)
	payouts.Get("/unpaid-details/:instructorId", handlers.GetUnpaidDetails)
	payouts.Post("/process/:instructorId", handlers.ProcessPayout)

	payouts.Get("/paid", handlers.GetPaidPayouts)
	payouts.Get("/batches", handlers.GetPayoutBatches)
	payouts.Get("/batches/instructor/:instructorId", handlers.GetInstructorBatches)

	payouts.Get("/summary", handlers.GetPayoutSummary)
	payouts.Get("/all-payment-history", handlers.GetPaymentHistory)
}
