package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Where("role = ?", "student").Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func CountUsers(c *fiber.Ctx) error {
	var totalUsers, activeUsers int64
	if err := database.DB.Model(&models.User{}).Where("role = ?", "student").Count(&totalUsers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.DB.Model(&models.User{}).Where("role = ? AND is_blocked = false", "student").Count(&activeUsers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"totalUsers": totalUsers, "activeUsers": activeUsers})
}

func GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

func ToggleUserBlocked(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsBlocked = !user.IsBlocked
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"id": user.ID, "is_blocked": user.IsBlocked})
}

// GetPaymentHistory lists every recorded revenue event for the admin
// payment history table.
func GetPaymentHistory(c *fiber.Ctx) error {
	var payments []models.Payment
	err := database.DB.Preload("User").Preload("Course").Order("paid_at DESC").Find(&payments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payment history"})
	}

	formatted := make([]fiber.Map, 0, len(payments))
	for _, p := range payments {
		formatted = append(formatted, fiber.Map{
			"userId":     p.UserID,
			"userName":   p.User.Name,
			"userEmail":  p.User.Email,
			"courseId":   p.CourseID,
			"courseName": p.Course.Title,
			"amount":     p.Amount,
			"paymentId":  p.ProviderTxnID,
			"status":     p.Status,
			"date":       p.PaidAt,
		})
	}

	return c.JSON(fiber.Map{"success": true, "payments": formatted})
}
