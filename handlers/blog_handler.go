package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/database"
	"github.com/mainamike/course_marketplace/models"
	"gorm.io/gorm"
)

type BlogRequest struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt" validate:"required"`
	ImageURL    *string  `json:"image_url"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author" validate:"required"`
	IsPublished bool     `json:"is_published"`
}

func CreateBlog(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	blog := models.Blog{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Tags:        req.Tags,
		Author:      req.Author,
		PublishedOn: time.Now(),
		IsPublished: req.IsPublished,
	}

	if err := database.DB.Create(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create blog"})
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

func ListBlogs(c *fiber.Ctx) error {
	var blogs []models.Blog
	if err := database.DB.Order("published_on DESC").Find(&blogs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(blogs)
}

func GetBlog(c *fiber.Ctx) error {
	blogID, err := uuid.Parse(c.Params("blogId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog ID format"})
	}

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
	}

	database.DB.Model(&blog).Update("views", gorm.Expr("views + 1"))

	return c.JSON(blog)
}

func UpdateBlog(c *fiber.Ctx) error {
	blogID, err := uuid.Parse(c.Params("blogId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog ID format"})
	}

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
	}

	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	blog.Title = req.Title
	blog.Content = req.Content
	blog.Excerpt = req.Excerpt
	blog.ImageURL = req.ImageURL
	blog.Category = req.Category
	blog.Tags = req.Tags
	blog.Author = req.Author
	blog.IsPublished = req.IsPublished

	if err := database.DB.Save(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update blog"})
	}

	return c.JSON(blog)
}

func DeleteBlog(c *fiber.Ctx) error {
	blogID, err := uuid.Parse(c.Params("blogId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid blog ID format"})
	}

	if err := database.DB.Delete(&models.Blog{}, "id = ?", blogID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete blog"})
	}

	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}
