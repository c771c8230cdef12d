package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
	"gorm.io/gorm"
)

func defaultAbout() models.About {
	return models.About{
		Heading:  "About Us",
		WhoWeAre: "We are a passionate team of educators, developers, designers, and field experts.",
		Vision:   "To create a future where anyone with curiosity and commitment can gain knowledge and skills.",
		Mission:  "Learn. Grow. Succeed. We're committed to helping learners build job-ready skills.",
		WhatMakesUsDifferent: []string{
			"Learn from Experts: Our courses are created and delivered by industry leaders",
			"Project-Based Learning: We don't just teach theory - we help you apply",
			"Beginner to Advanced: We welcome learners at all skill levels",
			"Affordable & Flexible: We believe high-quality education shouldn't cost a fortune",
			"Global & Inclusive: Our content is aligned with international standards",
		},
		Technologies: []string{
			"Frontend Development (JavaScript, HTML, CSS, React)",
			"Web & App Development (HTML, CSS, Flutter, React)",
			"Data Science & AI",
			"Freelancing Skills & Portfolio Building",
			"Graphics & Entrepreneurship",
			"Creative & Technical Writing",
			"Career Development & Soft Skills",
		},
		Commitment: "We're not just building a product - we're building a community of lifelong learners.",
	}
}

// GetAbout returns the singleton about document, creating it with
// defaults on first access.
func GetAbout(c *fiber.Ctx) error {
	var about models.About
	err := database.DB.First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		about = defaultAbout()
		if err := database.DB.Create(&about).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create about information"})
		}
		return c.JSON(about)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(about)
}

func UpdateAbout(c *fiber.Ctx) error {
	var req models.About
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var about models.About
	err := database.DB.First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		about = req
		if err := database.DB.Create(&about).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save about information"})
		}
		return c.JSON(about)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	req.ID = about.ID
	req.CreatedAt = about.CreatedAt
	if err := database.DB.Save(&req).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update about information"})
	}
	return c.JSON(req)
}

// GetContactInfo returns the singleton contact record, created with
// defaults on first access.
func GetContactInfo(c *fiber.Ctx) error {
	var info models.ContactInfo
	err := database.DB.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.ContactInfo{
			Phone:   "+1-000-000-0000",
			Email:   "info@example.com",
			Address: "Remote",
		}
		if err := database.DB.Create(&info).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create contact info"})
		}
		return c.JSON(info)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(info)
}

func UpdateContactInfo(c *fiber.Ctx) error {
	type ContactInfoRequest struct {
		Phone   string `json:"phone" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Address string `json:"address" validate:"required"`
	}

	var req ContactInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var info models.ContactInfo
	err := database.DB.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info = models.ContactInfo{Phone: req.Phone, Email: req.Email, Address: req.Address}
		if err := database.DB.Create(&info).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save contact info"})
		}
		return c.JSON(info)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	info.Phone = req.Phone
	info.Email = req.Email
	info.Address = req.Address
	if err := database.DB.Save(&info).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update contact info"})
	}
	return c.JSON(info)
}
