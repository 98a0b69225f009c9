// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectCode string  `json:"subject_code" validate:"required,max=40"`
	SubjectName string  `json:"subject_name" validate:"required,max=120"`
	SubjectDesc *string `json:"subject_desc" validate:"omitempty"`
}

func (r *CreateSubjectRequest) ToModel(schoolID uuid.UUID) *model.SubjectModel {
	return &model.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectCode:     strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		SubjectName:     strings.TrimSpace(r.SubjectName),
		SubjectDesc:     r.SubjectDesc,
	}
}

type UpdateSubjectRequest struct {
	SubjectCode *string `json:"subject_code" validate:"omitempty,max=40"`
	SubjectName *string `json:"subject_name" validate:"omitempty,max=120"`
	SubjectDesc *string `json:"subject_desc" validate:"omitempty"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.SubjectCode != nil {
		m.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.SubjectCode))
	}
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectDesc != nil {
		m.SubjectDesc = r.SubjectDesc
	}
	if r.IsActive != nil {
		m.SubjectIsActive = *r.IsActive
	}
}

type CreateClassSubjectRequest struct {
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
}

func (r *CreateClassSubjectRequest) ToModel(schoolID uuid.UUID) *model.ClassSubjectModel {
	return &model.ClassSubjectModel{
		ClassSubjectSchoolID:  schoolID,
		ClassSubjectClassID:   r.ClassID,
		ClassSubjectSubjectID: r.SubjectID,
	}
}
