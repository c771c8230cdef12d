package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
)

type CourseRequest struct {
	Title          string     `json:"title" validate:"required,min=2"`
	InstructorID   *uuid.UUID `json:"instructor_id"`
	InstructorName string     `json:"instructor_name" validate:"required"`
	ImageURL       *string    `json:"image_url"`
	Lessons        int        `json:"lessons" validate:"required,gt=0"`
	Duration       string     `json:"duration" validate:"required"`
	Price          float64    `json:"price" validate:"gte=0"`
	OriginalPrice  float64    `json:"original_price" validate:"gte=0"`
	IsFree         bool       `json:"is_free"`
	Category       string     `json:"category" validate:"required"`
	Tags           []string   `json:"tags"`
	Level          string     `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
}

func CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Title:          req.Title,
		InstructorID:   req.InstructorID,
		InstructorName: req.InstructorName,
		ImageURL:       req.ImageURL,
		Lessons:        req.Lessons,
		Duration:       req.Duration,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		IsFree:         req.IsFree,
		Category:       req.Category,
		Tags:           req.Tags,
		Level:          req.Level,
	}

	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Order("created_at DESC").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(courses)
}

func GetCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	var course models.Course
	if err := database.DB.Preload("Instructor").First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Title = req.Title
	course.InstructorID = req.InstructorID
	course.InstructorName = req.InstructorName
	course.ImageURL = req.ImageURL
	course.Lessons = req.Lessons
	course.Duration = req.Duration
	course.Price = req.Price
	course.OriginalPrice = req.OriginalPrice
	course.IsFree = req.IsFree
	course.Category = req.Category
	course.Tags = req.Tags
	course.Level = req.Level

	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	if err := database.DB.Delete(&models.Course{}, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}
