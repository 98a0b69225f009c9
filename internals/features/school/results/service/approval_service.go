// file: internals/features/school/results/service/approval_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	resultModel "schoolku_backend/internals/features/school/results/model"
	scoreService "schoolku_backend/internals/features/school/scores/service"
	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
   RESULT APPROVAL STATE MACHINE
   Dua state saja: Open (tanpa baris summary) → Approved (ada baris).
   Transisi satu arah, tidak ada un-approve. Race approve ganda
   diselesaikan oleh unique index scope: yang kalah membaca baris
   pemenang dan tetap dianggap sukses (idempotent).
   ========================================================= */

type ApprovalScope struct {
	SchoolID   uuid.UUID
	ClassID    uuid.UUID
	ClassGroup *string
	Session    string
	Term       string
}

type ApprovalStatus struct {
	Approved   bool                            `json:"approved"`
	CanApprove bool                            `json:"can_approve"`
	ClassGroup *string                         `json:"class_group,omitempty"`
	Summary    *resultModel.ResultSummaryModel `json:"summary,omitempty"`
}

// ResolveFormTeacherGroup: cari penugasan wali kelas aktif si guru untuk
// class+session. ok=false artinya guru bukan wali kelas di scope itu.
func ResolveFormTeacherGroup(ctx context.Context, db *gorm.DB, schoolID, teacherID, classID uuid.UUID, session string) (*string, bool, error) {
	var rows []struct {
		ClassGroup *string `gorm:"column:form_teacher_assignment_class_group"`
	}
	if err := db.WithContext(ctx).
		Table("form_teacher_assignments").
		Select("form_teacher_assignment_class_group").
		Where(`
			form_teacher_assignment_school_id  = ?
			AND form_teacher_assignment_teacher_id = ?
			AND form_teacher_assignment_class_id   = ?
			AND form_teacher_assignment_session    = ?
			AND form_teacher_assignment_is_active  = TRUE
			AND form_teacher_assignment_deleted_at IS NULL
		`, schoolID, teacherID, classID, session).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, false, helper.StorageError(err, "Gagal cek penugasan wali kelas")
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0].ClassGroup, true, nil
}

// FindSummary: baris summary untuk satu scope, nil kalau masih open.
// Perbandingan group null-safe.
func FindSummary(ctx context.Context, db *gorm.DB, sc ApprovalScope) (*resultModel.ResultSummaryModel, error) {
	var m resultModel.ResultSummaryModel
	err := db.WithContext(ctx).
		Where(`
			result_summary_school_id = ?
			AND result_summary_class_id = ?
			AND result_summary_class_group IS NOT DISTINCT FROM ?::text
			AND result_summary_session = ?
			AND result_summary_term    = ?
		`, sc.SchoolID, sc.ClassID, sc.ClassGroup, sc.Session, sc.Term).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, helper.StorageError(err, "Gagal membaca status approval")
	}
	return &m, nil
}

// CheckApproval: status scope + apakah guru pemanggil berhak approve.
// teacherID boleh uuid.Nil (admin tanpa profil guru) — can_approve false,
// status tetap terbaca.
func CheckApproval(ctx context.Context, db *gorm.DB, schoolID, teacherID, classID uuid.UUID, session, term string) (*ApprovalStatus, error) {
	var (
		group *string
		isFT  bool
		err   error
	)
	if teacherID != uuid.Nil {
		group, isFT, err = ResolveFormTeacherGroup(ctx, db, schoolID, teacherID, classID, session)
		if err != nil {
			return nil, err
		}
	}

	summary, err := FindSummary(ctx, db, ApprovalScope{
		SchoolID:   schoolID,
		ClassID:    classID,
		ClassGroup: group,
		Session:    session,
		Term:       term,
	})
	if err != nil {
		return nil, err
	}

	return newApprovalStatus(group, isFT, summary), nil
}

// newApprovalStatus: can_approve murni soal penugasan wali kelas, TIDAK
// bergantung state approval — wali kelas tetap can_approve setelah scope
// approved (approve ulang idempotent, bukan terlarang).
func newApprovalStatus(group *string, isFT bool, summary *resultModel.ResultSummaryModel) *ApprovalStatus {
	return &ApprovalStatus{
		Approved:   summary != nil,
		CanApprove: isFT,
		ClassGroup: group,
		Summary:    summary,
	}
}

// Approve: kunci hasil scope si wali kelas. Idempotent — scope yang sudah
// approved mengembalikan baris lama sebagai sukses, bukan conflict.
func Approve(ctx context.Context, db *gorm.DB, schoolID, teacherID, classID uuid.UUID, session, term string) (*resultModel.ResultSummaryModel, error) {
	group, isFT, err := ResolveFormTeacherGroup(ctx, db, schoolID, teacherID, classID, session)
	if err != nil {
		return nil, err
	}
	if !isFT {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya wali kelas yang boleh approve hasil")
	}

	scope := ApprovalScope{
		SchoolID:   schoolID,
		ClassID:    classID,
		ClassGroup: group,
		Session:    session,
		Term:       term,
	}

	if existing, err := FindSummary(ctx, db, scope); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	totalStudents, totalScore, avg, err := aggregateScope(ctx, db, scope)
	if err != nil {
		return nil, err
	}

	m := resultModel.ResultSummaryModel{
		ResultSummarySchoolID:      schoolID,
		ResultSummaryClassID:       classID,
		ResultSummaryClassGroup:    group,
		ResultSummarySession:       session,
		ResultSummaryTerm:          term,
		ResultSummaryTotalStudents: totalStudents,
		ResultSummaryTotalScore:    totalScore,
		ResultSummaryAverageScore:  avg,
		ResultSummaryStatus:        resultModel.ResultSummaryStatusApproved,
		ResultSummaryApprovedBy:    teacherID,
	}
	if err := db.WithContext(ctx).Create(&m).Error; err != nil {
		// kalah race dari approve bersamaan: ambil baris pemenang
		if scoreService.IsDuplicateErr(err) {
			if existing, err2 := FindSummary(ctx, db, scope); err2 == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, helper.StorageError(err, "Gagal menyimpan approval")
	}
	return &m, nil
}

// aggregateScope: snapshot agregat saat approve.
// - total_students : semua anggota kelas aktif di scope (dinilai atau belum)
// - total_score    : jumlah total nilai aktif di scope (semua mapel)
// - average        : total_score / jumlah baris nilai; nil bila belum ada nilai
func aggregateScope(ctx context.Context, db *gorm.DB, sc ApprovalScope) (int, float64, *float64, error) {
	var agg struct {
		TotalStudents int     `gorm:"column:total_students"`
		ScoredRows    int     `gorm:"column:scored_rows"`
		TotalScore    float64 `gorm:"column:total_score"`
	}
	err := db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT m.student_class_membership_student_id) AS total_students,
			COUNT(s.student_score_id)                             AS scored_rows,
			COALESCE(SUM(s.student_score_total), 0)               AS total_score
		FROM student_class_memberships m
		LEFT JOIN student_scores s
		  ON s.student_score_student_id = m.student_class_membership_student_id
		 AND s.student_score_class_id   = m.student_class_membership_class_id
		 AND s.student_score_session    = m.student_class_membership_session
		 AND s.student_score_term       = ?
		 AND s.student_score_is_active  = TRUE
		 AND s.student_score_deleted_at IS NULL
		WHERE m.student_class_membership_school_id = ?
		  AND m.student_class_membership_class_id  = ?
		  AND m.student_class_membership_class_group IS NOT DISTINCT FROM ?::text
		  AND m.student_class_membership_session   = ?
		  AND m.student_class_membership_is_active = TRUE
		  AND m.student_class_membership_deleted_at IS NULL
	`, sc.Term, sc.SchoolID, sc.ClassID, sc.ClassGroup, sc.Session).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, nil, helper.StorageError(err, "Gagal menghitung agregat scope")
	}

	var avg *float64
	if agg.ScoredRows > 0 {
		v := agg.TotalScore / float64(agg.ScoredRows)
		avg = &v
	}
	return agg.TotalStudents, agg.TotalScore, avg, nil
}
