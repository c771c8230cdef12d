package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
	"github.com/mainamike/course_marketplace/notifications"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5"`
}

func CreateContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := database.DB.Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save message"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Message received. We will get back to you soon."})
}

func ListContacts(c *fiber.Ctx) error {
	var contacts []models.Contact
	if err := database.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(contacts)
}

func ReplyToContact(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("contactId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contact ID format"})
	}

	type ReplyRequest struct {
		Reply string `json:"reply" validate:"required,min=2"`
	}
	var req ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var contact models.Contact
	if err := database.DB.First(&contact, "id = ?", contactID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
	}

	now := time.Now()
	contact.IsReplied = true
	contact.RepliedAt = &now
	if err := database.DB.Save(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update message"})
	}

	go notifications.SendEmail(
		contact.Name,
		contact.Email,
		"Re: Your Message to Our Team",
		fmt.Sprintf("<p>Hello %s,</p><p>%s</p>", contact.Name, req.Reply),
	)

	return c.JSON(fiber.Map{"message": "Reply sent"})
}

func DeleteContact(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("contactId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contact ID format"})
	}

	if err := database.DB.Delete(&models.Contact{}, "id = ?", contactID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete message"})
	}

	return c.JSON(fiber.Map{"message": "Message deleted successfully"})
}
