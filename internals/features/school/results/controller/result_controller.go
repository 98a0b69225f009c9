// file: internals/features/school/results/controller/result_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/features/school/results/dto"
	"schoolku_backend/internals/features/school/results/service"
	scoreModel "schoolku_backend/internals/features/school/scores/model"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

var validate = validator.New()

// =============================
// GET /api/t/results/approval
// =============================
// Status approval scope + apakah pemanggil boleh approve. Token tanpa
// teacher_id (admin murni) tetap bisa baca status, can_approve=false.
func (ctl *ResultController) CheckApproval(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	teacherID, _ := helperAuth.GetTeacherIDFromToken(c)

	var req dto.CheckApprovalQuery
	if err := c.QueryParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	term, ok := scoreModel.ParseTerm(req.Term)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Term tidak dikenal (pakai 1st/2nd/3rd)")
	}

	st, err := service.CheckApproval(c.Context(), ctl.DB, schoolID, teacherID, req.ClassID, req.Session, term)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Status approval berhasil diambil", dto.FromApprovalStatus(st))
}

// =============================
// POST /api/t/results/approve
// =============================
func (ctl *ResultController) Approve(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ApproveResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	term, ok := scoreModel.ParseTerm(req.Term)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Term tidak dikenal (pakai 1st/2nd/3rd)")
	}

	summary, err := service.Approve(c.Context(), ctl.DB, schoolID, teacherID, req.ClassID, req.Session, term)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Hasil berhasil diapprove", dto.FromSummaryModel(summary))
}
