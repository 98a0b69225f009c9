// file: internals/route/details/school_routes.go
package details

import (
	ClassesRoutes "schoolku_backend/internals/features/school/academics/classes/route"
	EnrollmentRoutes "schoolku_backend/internals/features/school/academics/enrollments/route"
	SubjectRoutes "schoolku_backend/internals/features/school/academics/subjects/route"
	ResultRoutes "schoolku_backend/internals/features/school/results/route"
	ScoreRoutes "schoolku_backend/internals/features/school/scores/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== ADMIN ===================== */
// CRUD master akademik (token + guard admin sekolah)
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	ClassesRoutes.ClassAdminRoutes(r, db)
	SubjectRoutes.SubjectAdminRoutes(r, db)
	EnrollmentRoutes.EnrollmentAdminRoutes(r, db)
}

/* ===================== TEACHER ===================== */
// Entri nilai + approval hasil (token + guard guru/admin)
func SchoolTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ScoreRoutes.ScoreTeacherRoutes(r, db)
	ResultRoutes.ResultTeacherRoutes(r, db)
}
