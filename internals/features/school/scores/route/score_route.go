// file: internals/features/school/scores/route/score_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoreController "schoolku_backend/internals/features/school/scores/controller"
)

// Dipasang di group /api/t (JWT + guard teacher/admin).
func ScoreTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scoreController.NewScoreController(db)

	scores := r.Group("/scores")
	scores.Post("/", ctl.SaveScore)
	scores.Get("/cohort", ctl.GetCohortView)
	scores.Put("/:id", ctl.UpdateScore)
	scores.Delete("/:id", ctl.RemoveScore)
}
