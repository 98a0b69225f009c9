// file: internals/features/school/scores/controller/score_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/features/school/scores/dto"
	"schoolku_backend/internals/features/school/scores/model"
	"schoolku_backend/internals/features/school/scores/service"
)

type ScoreController struct {
	DB *gorm.DB
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db}
}

var validate = validator.New()

// =============================
// POST /api/t/scores
// =============================
func (ctl *ScoreController) SaveScore(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SaveScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	term, ok := model.ParseTerm(req.Term)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Term tidak dikenal (pakai 1st/2nd/3rd)")
	}

	saved, err := service.SaveScore(c.Context(), ctl.DB, service.SaveScoreInput{
		SchoolID:   schoolID,
		TeacherID:  teacherID,
		StudentID:  req.StudentID,
		ClassID:    req.ClassID,
		SubjectID:  req.SubjectID,
		Session:    req.Session,
		Term:       term,
		Actor:      userID,
		Components: req.Components(),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Nilai berhasil disimpan", dto.FromScoreModel(saved))
}

// =============================
// PUT /api/t/scores/:id
// =============================
func (ctl *ScoreController) UpdateScore(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	scoreID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID nilai tidak valid")
	}

	var req dto.UpdateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := service.UpdateScore(c.Context(), ctl.DB, schoolID, scoreID, userID, req.Components())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", dto.FromScoreModel(updated))
}

// =============================
// DELETE /api/t/scores/:id
// =============================
func (ctl *ScoreController) RemoveScore(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	scoreID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID nilai tidak valid")
	}

	removed, err := service.RemoveScore(c.Context(), ctl.DB, schoolID, scoreID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", dto.FromScoreModel(removed))
}

// =============================
// GET /api/t/scores/cohort
// =============================
func (ctl *ScoreController) GetCohortView(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CohortQueryRequest
	if err := c.QueryParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	term := ""
	if req.Term != "" {
		t, ok := model.ParseTerm(req.Term)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Term tidak dikenal (pakai 1st/2nd/3rd)")
		}
		term = t
	}

	q := service.CohortQuery{
		SchoolID:  schoolID,
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		Session:   req.Session,
		Term:      term,
	}
	// keberadaan key yang menentukan filter group, bukan isinya
	if c.Request().URI().QueryArgs().Has("class_group") {
		q.HasGroupFilter = true
		if req.ClassGroup != nil && *req.ClassGroup != "" {
			q.ClassGroup = req.ClassGroup
		}
	}

	view, err := service.GetCohortView(c.Context(), ctl.DB, q)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Data cohort berhasil diambil", view)
}
