package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mainamike/course_marketplace/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/courses", handlers.ListCourses)
	api.Get("/courses/:courseId", handlers.GetCourse)

	api.Get("/blogs", handlers.ListBlogs)
	api.Get("/blogs/:blogId", handlers.GetBlog)

	api.Post("/contacts", handlers.CreateContact)

	api.Get("/about", handlers.GetAbout)
	api.Get("/contact-info", handlers.GetContactInfo)
}
