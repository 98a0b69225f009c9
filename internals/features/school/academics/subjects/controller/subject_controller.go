// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/features/school/academics/subjects/dto"
	"schoolku_backend/internals/features/school/academics/subjects/model"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

// =============================
// POST /api/a/subjects
// =============================
func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal membuat mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", m)
}

// =============================
// GET /api/a/subjects
// =============================
func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)

	if q := c.Query("q"); q != "" {
		tx = tx.Where("subject_name ILIKE ? OR subject_code ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menghitung data mapel")
	}

	var rows []model.SubjectModel
	if err := tx.Order("subject_code ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal mengambil data mapel")
	}

	return helper.JsonList(c, "Data mapel berhasil diambil", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// =============================
// PUT /api/a/subjects/:id
// =============================
func (ctl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", subjectID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal mengambil data mapel")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal memperbarui mapel")
	}
	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", m)
}

// =============================
// DELETE /api/a/subjects/:id
// =============================
func (ctl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	subjectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ? AND subject_school_id = ?", subjectID, schoolID).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, helper.StorageStatus(res.Error), "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": subjectID})
}

// =============================
// POST /api/a/class-subjects
// =============================
func (ctl *SubjectController) CreateClassSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateClassSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal membuka mapel di kelas")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuka di kelas", m)
}

// =============================
// GET /api/a/class-subjects
// =============================
func (ctl *SubjectController) ListClassSubjects(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.ClassSubjectModel{}).
		Where("class_subject_school_id = ?", schoolID)

	if classID := c.Query("class_id"); classID != "" {
		tx = tx.Where("class_subject_class_id = ?", classID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal menghitung data")
	}

	var rows []model.ClassSubjectModel
	if err := tx.Order("class_subject_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, helper.StorageStatus(err), "Gagal mengambil data")
	}

	return helper.JsonList(c, "Data berhasil diambil", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// =============================
// DELETE /api/a/class-subjects/:id
// =============================
func (ctl *SubjectController) DeleteClassSubject(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("class_subject_id = ? AND class_subject_school_id = ?", id, schoolID).
		Delete(&model.ClassSubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, helper.StorageStatus(res.Error), "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data berhasil dihapus", fiber.Map{"class_subject_id": id})
}
