// file: internals/features/school/results/route/result_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "schoolku_backend/internals/features/school/results/controller"
)

// Dipasang di group /api/t (JWT + guard teacher/admin).
func ResultTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := resultController.NewResultController(db)

	results := r.Group("/results")
	results.Get("/approval", ctl.CheckApproval)
	results.Post("/approve", ctl.Approve)
}
