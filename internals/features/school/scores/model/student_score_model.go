// file: internals/features/school/scores/model/student_score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu baris nilai per natural key (student, class, subject, session, term).
// NOTE:
// - total SELALU dihitung ulang dari lima komponen saat tulis — tidak pernah
//   diedit terpisah (lihat RecomputeTotal).
// - natural key dijaga unik oleh partial unique index
//   uq_student_scores_natural_key (WHERE student_score_deleted_at IS NULL)
//   di migrasi SQL; tag uniqueIndex di bawah dokumentasi bentuknya.
// - nonaktif (is_active=false) ≠ soft delete: baris nonaktif masih menempati
//   natural key-nya dan di-reuse oleh upsert.
type StudentScoreModel struct {
	StudentScoreID       uuid.UUID `gorm:"column:student_score_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_score_id"`
	StudentScoreSchoolID uuid.UUID `gorm:"column:student_score_school_id;type:uuid;not null;index" json:"student_score_school_id"`

	// Natural key
	StudentScoreStudentID uuid.UUID `gorm:"column:student_score_student_id;type:uuid;not null;uniqueIndex:uq_student_scores_natural_key,priority:1" json:"student_score_student_id"`
	StudentScoreClassID   uuid.UUID `gorm:"column:student_score_class_id;type:uuid;not null;uniqueIndex:uq_student_scores_natural_key,priority:2;index:idx_student_scores_cohort,priority:1" json:"student_score_class_id"`
	StudentScoreSubjectID uuid.UUID `gorm:"column:student_score_subject_id;type:uuid;not null;uniqueIndex:uq_student_scores_natural_key,priority:3;index:idx_student_scores_cohort,priority:2" json:"student_score_subject_id"`
	StudentScoreSession   string    `gorm:"column:student_score_session;type:varchar(20);not null;uniqueIndex:uq_student_scores_natural_key,priority:4" json:"student_score_session"`
	StudentScoreTerm      string    `gorm:"column:student_score_term;type:varchar(10);not null;uniqueIndex:uq_student_scores_natural_key,priority:5" json:"student_score_term"`

	// Lima komponen (>= 0; kosong dianggap 0)
	StudentScoreAssessment1 float64 `gorm:"column:student_score_assessment_1;type:numeric(6,2);not null;default:0" json:"student_score_assessment_1"`
	StudentScoreAssessment2 float64 `gorm:"column:student_score_assessment_2;type:numeric(6,2);not null;default:0" json:"student_score_assessment_2"`
	StudentScoreTest1       float64 `gorm:"column:student_score_test_1;type:numeric(6,2);not null;default:0" json:"student_score_test_1"`
	StudentScoreTest2       float64 `gorm:"column:student_score_test_2;type:numeric(6,2);not null;default:0" json:"student_score_test_2"`
	StudentScoreExam        float64 `gorm:"column:student_score_exam;type:numeric(6,2);not null;default:0" json:"student_score_exam"`

	StudentScoreTotal float64 `gorm:"column:student_score_total;type:numeric(7,2);not null;default:0" json:"student_score_total"`

	StudentScoreIsActive bool `gorm:"column:student_score_is_active;not null;default:true" json:"student_score_is_active"`

	// Audit
	StudentScoreAddedBy   *uuid.UUID `gorm:"column:student_score_added_by;type:uuid" json:"student_score_added_by,omitempty"`
	StudentScoreUpdatedBy *uuid.UUID `gorm:"column:student_score_updated_by;type:uuid" json:"student_score_updated_by,omitempty"`

	StudentScoreCreatedAt time.Time      `gorm:"column:student_score_created_at;not null;autoCreateTime" json:"student_score_created_at"`
	StudentScoreUpdatedAt time.Time      `gorm:"column:student_score_updated_at;not null;autoUpdateTime" json:"student_score_updated_at"`
	StudentScoreDeletedAt gorm.DeletedAt `gorm:"column:student_score_deleted_at;index" json:"student_score_deleted_at,omitempty"`
}

func (StudentScoreModel) TableName() string { return "student_scores" }

// RecomputeTotal: total = jumlah lima komponen, tanpa pembulatan.
func (m *StudentScoreModel) RecomputeTotal() {
	m.StudentScoreTotal = m.StudentScoreAssessment1 +
		m.StudentScoreAssessment2 +
		m.StudentScoreTest1 +
		m.StudentScoreTest2 +
		m.StudentScoreExam
}
