// file: internals/features/school/academics/enrollments/controller/enrollment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/features/school/academics/enrollments/dto"
	"schoolku_backend/internals/features/school/academics/enrollments/model"
)

// Satu controller untuk keempat tabel roster: membership kelas, enrolmen
// mapel, penugasan guru mapel, dan penugasan wali kelas. Semuanya CRUD
// admin biasa tanpa logika domain — logika ada di service nilai/hasil.
type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

/* =========================================================
   Membership kelas (student_class_memberships)
   ========================================================= */

// POST /api/a/memberships
func (ctl *EnrollmentController) CreateMembership(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menambah anggota kelas")
	}
	return helper.JsonCreated(c, "Anggota kelas berhasil ditambah", m)
}

// GET /api/a/memberships?class_id=&session=
func (ctl *EnrollmentController) ListMemberships(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.StudentClassMembershipModel{}).
		Where("student_class_membership_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		tx = tx.Where("student_class_membership_class_id = ?", classID)
	}
	if session := c.Query("session"); session != "" {
		tx = tx.Where("student_class_membership_session = ?", session)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menghitung data")
	}

	var rows []model.StudentClassMembershipModel
	if err := tx.Order("student_class_membership_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal mengambil data")
	}
	return helper.JsonList(c, "Data anggota kelas berhasil diambil", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// DELETE /api/a/memberships/:id
func (ctl *EnrollmentController) DeleteMembership(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("student_class_membership_id = ? AND student_class_membership_school_id = ?", id, schoolID).
		Delete(&model.StudentClassMembershipModel{})
	if res.Error != nil {
		return helper.JsonError(c, helper.StorageStatus(res.Error), "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Anggota kelas berhasil dihapus", fiber.Map{"membership_id": id})
}

/* =========================================================
   Enrolmen mapel (student_subject_enrollments)
   ========================================================= */

// POST /api/a/subject-enrollments
func (ctl *EnrollmentController) CreateSubjectEnrollment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateSubjectEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menambah enrolmen mapel")
	}
	return helper.JsonCreated(c, "Enrolmen mapel berhasil ditambah", m)
}

// GET /api/a/subject-enrollments?class_id=&subject_id=&session=
func (ctl *EnrollmentController) ListSubjectEnrollments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.StudentSubjectEnrollmentModel{}).
		Where("student_subject_enrollment_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		tx = tx.Where("student_subject_enrollment_class_id = ?", classID)
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		tx = tx.Where("student_subject_enrollment_subject_id = ?", subjectID)
	}
	if session := c.Query("session"); session != "" {
		tx = tx.Where("student_subject_enrollment_session = ?", session)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menghitung data")
	}

	var rows []model.StudentSubjectEnrollmentModel
	if err := tx.Order("student_subject_enrollment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal mengambil data")
	}
	return helper.JsonList(c, "Data enrolmen berhasil diambil", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// DELETE /api/a/subject-enrollments/:id
func (ctl *EnrollmentController) DeleteSubjectEnrollment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("student_subject_enrollment_id = ? AND student_subject_enrollment_school_id = ?", id, schoolID).
		Delete(&model.StudentSubjectEnrollmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, helper.StorageStatus(res.Error), "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Enrolmen mapel berhasil dihapus", fiber.Map{"enrollment_id": id})
}

/* =========================================================
   Penugasan guru mapel (teacher_subject_assignments)
   ========================================================= */

// POST /api/a/teacher-assignments
func (ctl *EnrollmentController) CreateTeacherAssignment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateTeacherAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menambah penugasan guru")
	}
	return helper.JsonCreated(c, "Penugasan guru berhasil ditambah", m)
}

// GET /api/a/teacher-assignments?teacher_id=&session=
func (ctl *EnrollmentController) ListTeacherAssignments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.TeacherSubjectAssignmentModel{}).
		Where("teacher_subject_assignment_school_id = ?", schoolID)
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		tx = tx.Where("teacher_subject_assignment_teacher_id = ?", teacherID)
	}
	if session := c.Query("session"); session != "" {
		tx = tx.Where("teacher_subject_assignment_session = ?", session)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menghitung data")
	}

	var rows []model.TeacherSubjectAssignmentModel
	if err := tx.Order("teacher_subject_assignment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal mengambil data")
	}
	return helper.JsonList(c, "Data penugasan berhasil diambil", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// DELETE /api/a/teacher-assignments/:id
func (ctl *EnrollmentController) DeleteTeacherAssignment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("teacher_subject_assignment_id = ? AND teacher_subject_assignment_school_id = ?", id, schoolID).
		Delete(&model.TeacherSubjectAssignmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, helper.StorageStatus(res.Error), "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Penugasan guru berhasil dihapus", fiber.Map{"assignment_id": id})
}

/* =========================================================
   Wali kelas (form_teacher_assignments)
   ========================================================= */

// POST /api/a/form-teachers
func (ctl *EnrollmentController) CreateFormTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateFormTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menetapkan wali kelas")
	}
	return helper.JsonCreated(c, "Wali kelas berhasil ditetapkan", m)
}

// GET /api/a/form-teachers?class_id=&session=
func (ctl *EnrollmentController) ListFormTeachers(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.FormTeacherAssignmentModel{}).
		Where("form_teacher_assignment_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		tx = tx.Where("form_teacher_assignment_class_id = ?", classID)
	}
	if session := c.Query("session"); session != "" {
		tx = tx.Where("form_teacher_assignment_session = ?", session)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menghitung data")
	}

	var rows []model.FormTeacherAssignmentModel
	if err := tx.Order("form_teacher_assignment_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal mengambil data")
	}
	return helper.JsonList(c, "Data wali kelas berhasil diambil", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// DELETE /api/a/form-teachers/:id
func (ctl *EnrollmentController) DeleteFormTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("form_teacher_assignment_id = ? AND form_teacher_assignment_school_id = ?", id, schoolID).
		Delete(&model.FormTeacherAssignmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, helper.StorageStatus(res.Error), "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Wali kelas berhasil dihapus", fiber.Map{"form_teacher_id": id})
}
