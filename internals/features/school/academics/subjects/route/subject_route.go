// file: internals/features/school/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "schoolku_backend/internals/features/school/academics/subjects/controller"
)

// Dipasang di group /api/a (JWT + guard school admin).
func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subjectController.NewSubjectController(db)

	subjects := r.Group("/subjects")
	subjects.Post("/", ctl.CreateSubject)
	subjects.Get("/", ctl.ListSubjects)
	subjects.Put("/:id", ctl.UpdateSubject)
	subjects.Delete("/:id", ctl.DeleteSubject)

	classSubjects := r.Group("/class-subjects")
	classSubjects.Post("/", ctl.CreateClassSubject)
	classSubjects.Get("/", ctl.ListClassSubjects)
	classSubjects.Delete("/:id", ctl.DeleteClassSubject)
}
