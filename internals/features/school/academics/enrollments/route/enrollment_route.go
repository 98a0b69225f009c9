// file: internals/features/school/academics/enrollments/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "schoolku_backend/internals/features/school/academics/enrollments/controller"
)

// Dipasang di group /api/a (JWT + guard school admin).
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)

	memberships := r.Group("/memberships")
	memberships.Post("/", ctl.CreateMembership)
	memberships.Get("/", ctl.ListMemberships)
	memberships.Delete("/:id", ctl.DeleteMembership)

	subjectEnrollments := r.Group("/subject-enrollments")
	subjectEnrollments.Post("/", ctl.CreateSubjectEnrollment)
	subjectEnrollments.Get("/", ctl.ListSubjectEnrollments)
	subjectEnrollments.Delete("/:id", ctl.DeleteSubjectEnrollment)

	teacherAssignments := r.Group("/teacher-assignments")
	teacherAssignments.Post("/", ctl.CreateTeacherAssignment)
	teacherAssignments.Get("/", ctl.ListTeacherAssignments)
	teacherAssignments.Delete("/:id", ctl.DeleteTeacherAssignment)

	formTeachers := r.Group("/form-teachers")
	formTeachers.Post("/", ctl.CreateFormTeacher)
	formTeachers.Get("/", ctl.ListFormTeachers)
	formTeachers.Delete("/:id", ctl.DeleteFormTeacher)
}
