// file: internals/features/school/results/dto/result_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/results/model"
	"schoolku_backend/internals/features/school/results/service"
)

type ApproveResultRequest struct {
	ClassID uuid.UUID `json:"class_id" validate:"required"`
	Session string    `json:"session" validate:"required,max=20"`
	Term    string    `json:"term" validate:"required"`
}

type CheckApprovalQuery struct {
	ClassID uuid.UUID `query:"class_id" validate:"required"`
	Session string    `query:"session" validate:"required,max=20"`
	Term    string    `query:"term" validate:"required"`
}

type ResultSummaryResponse struct {
	SummaryID  uuid.UUID `json:"summary_id"`
	SchoolID   uuid.UUID `json:"school_id"`
	ClassID    uuid.UUID `json:"class_id"`
	ClassGroup *string   `json:"class_group,omitempty"`
	Session    string    `json:"session"`
	Term       string    `json:"term"`

	TotalStudents int      `json:"total_students"`
	TotalScore    float64  `json:"total_score"`
	AverageScore  *float64 `json:"average_score,omitempty"`

	Status     string    `json:"status"`
	ApprovedBy uuid.UUID `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
}

func FromSummaryModel(m *model.ResultSummaryModel) *ResultSummaryResponse {
	if m == nil {
		return nil
	}
	return &ResultSummaryResponse{
		SummaryID:     m.ResultSummaryID,
		SchoolID:      m.ResultSummarySchoolID,
		ClassID:       m.ResultSummaryClassID,
		ClassGroup:    m.ResultSummaryClassGroup,
		Session:       m.ResultSummarySession,
		Term:          m.ResultSummaryTerm,
		TotalStudents: m.ResultSummaryTotalStudents,
		TotalScore:    m.ResultSummaryTotalScore,
		AverageScore:  m.ResultSummaryAverageScore,
		Status:        m.ResultSummaryStatus,
		ApprovedBy:    m.ResultSummaryApprovedBy,
		ApprovedAt:    m.ResultSummaryApprovedAt,
	}
}

type ApprovalStatusResponse struct {
	Approved   bool                   `json:"approved"`
	CanApprove bool                   `json:"can_approve"`
	ClassGroup *string                `json:"class_group,omitempty"`
	Summary    *ResultSummaryResponse `json:"summary,omitempty"`
}

func FromApprovalStatus(st *service.ApprovalStatus) *ApprovalStatusResponse {
	return &ApprovalStatusResponse{
		Approved:   st.Approved,
		CanApprove: st.CanApprove,
		ClassGroup: st.ClassGroup,
		Summary:    FromSummaryModel(st.Summary),
	}
}
