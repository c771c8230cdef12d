package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mainamike/course_marketplace/handlers"
	"github.com/mainamike/course_marketplace/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Get("/count", handlers.CountUsers)
	users.Get("/:userId", handlers.GetUser)
	users.Put("/:userId/block", handlers.ToggleUserBlocked)

	instructors := admin.Group("/instructors")
	instructors.Post("", handlers.CreateInstructor)
	instructors.Get("", handlers.ListInstructors)
	instructors.Get("/:instructorId", handlers.GetInstructor)
	instructors.Put("/:instructorId", handlers.UpdateInstructor)

	courses := admin.Group("/courses")
	courses.Post("", handlers.CreateCourse)
	courses.Put("/:courseId", handlers.UpdateCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)

	blogs := admin.Group("/blogs")
	blogs.Post("", handlers.CreateBlog)
	blogs.Put("/:blogId", handlers.UpdateBlog)
	blogs.Delete("/:blogId", handlers.DeleteBlog)

	contacts := admin.Group("/contacts")
	contacts.Get("", handlers.ListContacts)
	contacts.Post("/:contactId/reply", handlers.ReplyToContact)
	contacts.Delete("/:contactId", handlers.DeleteContact)

	uploads := admin.Group("/uploads")
	uploads.Get("/signature", handlers.GenerateUploadSignature)

	admin.Put("/about", handlers.UpdateAbout)
	admin.Put("/contact-info", handlers.UpdateContactInfo)
}
