// file: internals/features/school/scores/service/entry.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/scores/model"
	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
   SCORE ENTRY SERVICE
   Urutan cek saveScore (jangan diubah — status code ikut kontrak):
   1. penugasan guru aktif utk (class, subject, session)   → 403
   2. enrolmen siswa aktif utk (class, subject, session)   → 404
   3. scope belum di-approve                                → 409
   4. upsert by natural key dalam satu transaksi
   Kegagalan store dipetakan lewat helper.StorageError
   (konektivitas → 503, selainnya → 500).
   ========================================================= */

type ScoreComponents struct {
	Assessment1 float64
	Assessment2 float64
	Test1       float64
	Test2       float64
	Exam        float64
}

type SaveScoreInput struct {
	SchoolID  uuid.UUID
	TeacherID uuid.UUID
	StudentID uuid.UUID
	ClassID   uuid.UUID
	SubjectID uuid.UUID
	Session   string
	Term      string // sudah kanonik ("1st"/"2nd"/"3rd") dari DTO
	Actor     uuid.UUID
	Components ScoreComponents
}

func SaveScore(ctx context.Context, db *gorm.DB, in SaveScoreInput) (*model.StudentScoreModel, error) {
	// 1) otorisasi: guru harus punya penugasan aktif persis di class+subject+session
	var cnt int64
	if err := db.WithContext(ctx).
		Table("teacher_subject_assignments").
		Where(`
			teacher_subject_assignment_school_id  = ?
			AND teacher_subject_assignment_teacher_id = ?
			AND teacher_subject_assignment_class_id   = ?
			AND teacher_subject_assignment_subject_id = ?
			AND teacher_subject_assignment_session    = ?
			AND teacher_subject_assignment_is_active  = TRUE
			AND teacher_subject_assignment_deleted_at IS NULL
		`, in.SchoolID, in.TeacherID, in.ClassID, in.SubjectID, in.Session).
		Count(&cnt).Error; err != nil {
		return nil, helper.StorageError(err, "Gagal cek penugasan guru")
	}
	if cnt == 0 {
		return nil, fiber.NewError(fiber.StatusForbidden, "Guru tidak ditugaskan pada kelas/mapel ini")
	}

	// 2) eligibility: siswa harus ter-enroll aktif di mapel tsb
	cnt = 0
	if err := db.WithContext(ctx).
		Table("student_subject_enrollments").
		Where(`
			student_subject_enrollment_school_id  = ?
			AND student_subject_enrollment_student_id = ?
			AND student_subject_enrollment_class_id   = ?
			AND student_subject_enrollment_subject_id = ?
			AND student_subject_enrollment_session    = ?
			AND student_subject_enrollment_is_active  = TRUE
			AND student_subject_enrollment_deleted_at IS NULL
		`, in.SchoolID, in.StudentID, in.ClassID, in.SubjectID, in.Session).
		Count(&cnt).Error; err != nil {
		return nil, helper.StorageError(err, "Gagal cek enrolmen siswa")
	}
	if cnt == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ter-enroll pada kelas/mapel ini")
	}

	// 3) guard approval (hard guard, bukan sekadar UI):
	//    scope approval memakai class_group dari membership siswa.
	group, err := lookupStudentClassGroup(ctx, db, in.SchoolID, in.StudentID, in.ClassID, in.Session)
	if err != nil {
		return nil, err
	}
	if err := ensureScopeNotApproved(ctx, db, in.SchoolID, in.ClassID, group, in.Session, in.Term); err != nil {
		return nil, err
	}

	// 4) upsert by natural key dalam transaksi
	var out model.StudentScoreModel
	txErr := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.StudentScoreModel
		err := tx.Where(`
			student_score_student_id = ?
			AND student_score_class_id   = ?
			AND student_score_subject_id = ?
			AND student_score_session    = ?
			AND student_score_term       = ?
		`, in.StudentID, in.ClassID, in.SubjectID, in.Session, in.Term).
			First(&existing).Error

		switch {
		case err == nil:
			// update in place — termasuk baris nonaktif, supaya natural key
			// tidak pernah ganda
			applyComponents(&existing, in.Components)
			existing.StudentScoreIsActive = true
			actor := in.Actor
			existing.StudentScoreUpdatedBy = &actor
			existing.StudentScoreUpdatedAt = time.Now()
			if err := tx.Save(&existing).Error; err != nil {
				return helper.StorageError(err, "Gagal memperbarui nilai")
			}
			out = existing
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			m := model.StudentScoreModel{
				StudentScoreSchoolID:  in.SchoolID,
				StudentScoreStudentID: in.StudentID,
				StudentScoreClassID:   in.ClassID,
				StudentScoreSubjectID: in.SubjectID,
				StudentScoreSession:   in.Session,
				StudentScoreTerm:      in.Term,
				StudentScoreIsActive:  true,
			}
			applyComponents(&m, in.Components)
			actor := in.Actor
			m.StudentScoreAddedBy = &actor
			if err := tx.Create(&m).Error; err != nil {
				// race dua save bersamaan: unique index menang, kita jatuh ke update
				if IsDuplicateErr(err) {
					if err2 := tx.Where(`
						student_score_student_id = ?
						AND student_score_class_id   = ?
						AND student_score_subject_id = ?
						AND student_score_session    = ?
						AND student_score_term       = ?
					`, in.StudentID, in.ClassID, in.SubjectID, in.Session, in.Term).
						First(&existing).Error; err2 != nil {
						return helper.StorageError(err2, "Gagal menyimpan nilai")
					}
					applyComponents(&existing, in.Components)
					existing.StudentScoreIsActive = true
					existing.StudentScoreUpdatedBy = &actor
					if err2 := tx.Save(&existing).Error; err2 != nil {
						return helper.StorageError(err2, "Gagal menyimpan nilai")
					}
					out = existing
					return nil
				}
				return helper.StorageError(err, "Gagal menyimpan nilai")
			}
			out = m
			return nil

		default:
			return helper.StorageError(err, "Gagal mengambil data nilai")
		}
	})
	if txErr != nil {
		return nil, txErr
	}
	return &out, nil
}

// UpdateScore: timpa komponen by id. Tidak ada re-otorisasi class/subject di
// sini (pemanggil dianggap sudah lolos saveScore) — asimetri yang disengaja
// dan terdokumentasi; guard approval tetap berlaku.
func UpdateScore(ctx context.Context, db *gorm.DB, schoolID, scoreID, actor uuid.UUID, comp ScoreComponents) (*model.StudentScoreModel, error) {
	var m model.StudentScoreModel
	if err := db.WithContext(ctx).
		Where("student_score_id = ? AND student_score_school_id = ?", scoreID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return nil, helper.StorageError(err, "Gagal mengambil data nilai")
	}

	group, err := lookupStudentClassGroup(ctx, db, m.StudentScoreSchoolID, m.StudentScoreStudentID, m.StudentScoreClassID, m.StudentScoreSession)
	if err != nil {
		return nil, err
	}
	if err := ensureScopeNotApproved(ctx, db, m.StudentScoreSchoolID, m.StudentScoreClassID, group, m.StudentScoreSession, m.StudentScoreTerm); err != nil {
		return nil, err
	}

	applyComponents(&m, comp)
	m.StudentScoreUpdatedBy = &actor
	m.StudentScoreUpdatedAt = time.Now()
	if err := db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, helper.StorageError(err, "Gagal memperbarui nilai")
	}
	return &m, nil
}

// RemoveScore: soft delete. Penghapusan kedua → 404 (baris sudah tak terlihat
// oleh scope default).
func RemoveScore(ctx context.Context, db *gorm.DB, schoolID, scoreID uuid.UUID) (*model.StudentScoreModel, error) {
	var m model.StudentScoreModel
	if err := db.WithContext(ctx).
		Where("student_score_id = ? AND student_score_school_id = ?", scoreID, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return nil, helper.StorageError(err, "Gagal mengambil data nilai")
	}

	group, err := lookupStudentClassGroup(ctx, db, m.StudentScoreSchoolID, m.StudentScoreStudentID, m.StudentScoreClassID, m.StudentScoreSession)
	if err != nil {
		return nil, err
	}
	if err := ensureScopeNotApproved(ctx, db, m.StudentScoreSchoolID, m.StudentScoreClassID, group, m.StudentScoreSession, m.StudentScoreTerm); err != nil {
		return nil, err
	}

	m.StudentScoreIsActive = false
	if err := db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, helper.StorageError(err, "Gagal menghapus nilai")
	}
	if err := db.WithContext(ctx).Delete(&m).Error; err != nil {
		return nil, helper.StorageError(err, "Gagal menghapus nilai")
	}
	return &m, nil
}

/* =========================================================
   Internal helpers
   ========================================================= */

func applyComponents(m *model.StudentScoreModel, c ScoreComponents) {
	m.StudentScoreAssessment1 = c.Assessment1
	m.StudentScoreAssessment2 = c.Assessment2
	m.StudentScoreTest1 = c.Test1
	m.StudentScoreTest2 = c.Test2
	m.StudentScoreExam = c.Exam
	m.RecomputeTotal()
}

func lookupStudentClassGroup(ctx context.Context, db *gorm.DB, schoolID, studentID, classID uuid.UUID, session string) (*string, error) {
	var groups []*string
	if err := db.WithContext(ctx).
		Table("student_class_memberships").
		Where(`
			student_class_membership_school_id  = ?
			AND student_class_membership_student_id = ?
			AND student_class_membership_class_id   = ?
			AND student_class_membership_session    = ?
			AND student_class_membership_is_active  = TRUE
			AND student_class_membership_deleted_at IS NULL
		`, schoolID, studentID, classID, session).
		Limit(1).
		Pluck("student_class_membership_class_group", &groups).Error; err != nil {
		return nil, helper.StorageError(err, "Gagal cek keanggotaan kelas")
	}
	if len(groups) == 0 {
		return nil, nil // tanpa membership → guard pakai group NULL
	}
	return groups[0], nil
}

func ensureScopeNotApproved(ctx context.Context, db *gorm.DB, schoolID, classID uuid.UUID, group *string, session, term string) error {
	var cnt int64
	if err := db.WithContext(ctx).
		Table("result_summaries").
		Where(`
			result_summary_school_id = ?
			AND result_summary_class_id = ?
			AND result_summary_class_group IS NOT DISTINCT FROM ?::text
			AND result_summary_session = ?
			AND result_summary_term    = ?
		`, schoolID, classID, group, session, term).
		Count(&cnt).Error; err != nil {
		return helper.StorageError(err, "Gagal cek status approval")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Hasil scope ini sudah diapprove dan terkunci")
	}
	return nil
}

// IsDuplicateErr: deteksi pelanggaran unique index dari pesan error driver.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique") ||
		strings.Contains(msg, "23505")
}
