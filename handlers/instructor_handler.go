package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type InstructorRequest struct {
	Name            string   `json:"name" validate:"required,min=2"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=6"`
	Bio             *string  `json:"bio"`
	Expertise       []string `json:"expertise"`
	CommissionRate  float64  `json:"commission_rate" validate:"omitempty,gt=0,lte=100"`
	AccountNumber   *string  `json:"account_number"`
	StripeAccountID *string  `json:"stripe_account_id"`
}

func CreateInstructor(c *fiber.Ctx) error {
	var req InstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	instructor := models.Instructor{
		Name:            req.Name,
		Email:           req.Email,
		Password:        string(hashedPassword),
		Bio:             req.Bio,
		Expertise:       req.Expertise,
		AccountNumber:   req.AccountNumber,
		StripeAccountID: req.StripeAccountID,
	}
	if req.CommissionRate > 0 {
		instructor.CommissionRate = req.CommissionRate
	}

	if err := database.DB.Create(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create instructor"})
	}

	return c.Status(fiber.StatusCreated).JSON(instructor)
}

func ListInstructors(c *fiber.Ctx) error {
	var instructors []models.Instructor
	if err := database.DB.Order("created_at DESC").Find(&instructors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(instructors)
}

func GetInstructor(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	var instructor models.Instructor
	if err := database.DB.First(&instructor, "id = ?", instructorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found"})
	}
	return c.JSON(instructor)
}

// UpdateInstructor edits profile and payout settings. Commission and
// destination changes apply to future disbursements only; existing
// settlements keep the values copied in when they were created.
func UpdateInstructor(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor ID format"})
	}

	type UpdateRequest struct {
		Name            *string  `json:"name"`
		Bio             *string  `json:"bio"`
		Expertise       []string `json:"expertise"`
		CommissionRate  *float64 `json:"commission_rate" validate:"omitempty,gt=0,lte=100"`
		AccountNumber   *string  `json:"account_number"`
		StripeAccountID *string  `json:"stripe_account_id"`
		Verified        *bool    `json:"verified"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var instructor models.Instructor
	if err := database.DB.First(&instructor, "id = ?", instructorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found"})
	}

	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.Bio != nil {
		instructor.Bio = req.Bio
	}
	if req.Expertise != nil {
		instructor.Expertise = req.Expertise
	}
	if req.CommissionRate != nil {
		instructor.CommissionRate = *req.CommissionRate
	}
	if req.AccountNumber != nil {
		instructor.AccountNumber = req.AccountNumber
	}
	if req.StripeAccountID != nil {
		instructor.StripeAccountID = req.StripeAccountID
	}
	if req.Verified != nil {
		instructor.Verified = *req.Verified
	}

	if err := database.DB.Save(&instructor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update instructor"})
	}

	return c.JSON(instructor)
}
