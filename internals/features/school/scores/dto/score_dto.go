// file: internals/features/school/scores/dto/score_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/scores/model"
	"schoolku_backend/internals/features/school/scores/service"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

// Komponen pakai *float64 + omitempty supaya field absen dianggap 0,
// sedangkan nilai negatif tetap ditolak validator (400).
type SaveScoreRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Session   string    `json:"session" validate:"required,max=20"`
	Term      string    `json:"term" validate:"required"`

	Assessment1 *float64 `json:"assessment_1" validate:"omitempty,gte=0"`
	Assessment2 *float64 `json:"assessment_2" validate:"omitempty,gte=0"`
	Test1       *float64 `json:"test_1" validate:"omitempty,gte=0"`
	Test2       *float64 `json:"test_2" validate:"omitempty,gte=0"`
	Exam        *float64 `json:"exam" validate:"omitempty,gte=0"`
}

func (r *SaveScoreRequest) Components() service.ScoreComponents {
	return service.ScoreComponents{
		Assessment1: deref(r.Assessment1),
		Assessment2: deref(r.Assessment2),
		Test1:       deref(r.Test1),
		Test2:       deref(r.Test2),
		Exam:        deref(r.Exam),
	}
}

type UpdateScoreRequest struct {
	Assessment1 *float64 `json:"assessment_1" validate:"omitempty,gte=0"`
	Assessment2 *float64 `json:"assessment_2" validate:"omitempty,gte=0"`
	Test1       *float64 `json:"test_1" validate:"omitempty,gte=0"`
	Test2       *float64 `json:"test_2" validate:"omitempty,gte=0"`
	Exam        *float64 `json:"exam" validate:"omitempty,gte=0"`
}

func (r *UpdateScoreRequest) Components() service.ScoreComponents {
	return service.ScoreComponents{
		Assessment1: deref(r.Assessment1),
		Assessment2: deref(r.Assessment2),
		Test1:       deref(r.Test1),
		Test2:       deref(r.Test2),
		Exam:        deref(r.Exam),
	}
}

// Query string GET /scores/cohort.
type CohortQueryRequest struct {
	ClassID   uuid.UUID `query:"class_id" validate:"required"`
	SubjectID uuid.UUID `query:"subject_id" validate:"required"`
	Session   string    `query:"session" validate:"omitempty,max=20"`
	Term      string    `query:"term" validate:"omitempty"`

	// class_group difilter hanya kalau dikirim; kosong eksplisit ("") berarti
	// filter group NULL. Dibedakan lewat keberadaan key di query string.
	ClassGroup *string `query:"class_group"`
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type ScoreResponse struct {
	ScoreID   uuid.UUID `json:"score_id"`
	SchoolID  uuid.UUID `json:"school_id"`
	StudentID uuid.UUID `json:"student_id"`
	ClassID   uuid.UUID `json:"class_id"`
	SubjectID uuid.UUID `json:"subject_id"`
	Session   string    `json:"session"`
	Term      string    `json:"term"`
	TermLabel string    `json:"term_label"`

	Assessment1 float64 `json:"assessment_1"`
	Assessment2 float64 `json:"assessment_2"`
	Test1       float64 `json:"test_1"`
	Test2       float64 `json:"test_2"`
	Exam        float64 `json:"exam"`
	Total       float64 `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromScoreModel(m *model.StudentScoreModel) *ScoreResponse {
	return &ScoreResponse{
		ScoreID:     m.StudentScoreID,
		SchoolID:    m.StudentScoreSchoolID,
		StudentID:   m.StudentScoreStudentID,
		ClassID:     m.StudentScoreClassID,
		SubjectID:   m.StudentScoreSubjectID,
		Session:     m.StudentScoreSession,
		Term:        m.StudentScoreTerm,
		TermLabel:   model.TermLongForm(m.StudentScoreTerm),
		Assessment1: m.StudentScoreAssessment1,
		Assessment2: m.StudentScoreAssessment2,
		Test1:       m.StudentScoreTest1,
		Test2:       m.StudentScoreTest2,
		Exam:        m.StudentScoreExam,
		Total:       m.StudentScoreTotal,
		CreatedAt:   m.StudentScoreCreatedAt,
		UpdatedAt:   m.StudentScoreUpdatedAt,
	}
}
