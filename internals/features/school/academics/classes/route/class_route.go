// file: internals/features/school/academics/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "schoolku_backend/internals/features/school/academics/classes/controller"
)

// Dipasang di group /api/a (JWT + guard school admin).
func ClassAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := classController.NewClassController(db)

	classes := r.Group("/classes")
	classes.Post("/", ctl.CreateClass)
	classes.Get("/", ctl.ListClasses)
	classes.Put("/:id", ctl.UpdateClass)
	classes.Delete("/:id", ctl.DeleteClass)
}
