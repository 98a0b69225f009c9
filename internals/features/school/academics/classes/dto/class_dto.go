// file: internals/features/school/academics/classes/dto/class_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/classes/model"
)

type CreateClassRequest struct {
	ClassName  string  `json:"class_name" validate:"required,max=120"`
	ClassLevel *string `json:"class_level" validate:"omitempty,max=40"`
}

func (r *CreateClassRequest) ToModel(schoolID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassSchoolID: schoolID,
		ClassName:     r.ClassName,
		ClassLevel:    r.ClassLevel,
	}
}

type UpdateClassRequest struct {
	ClassName  *string `json:"class_name" validate:"omitempty,max=120"`
	ClassLevel *string `json:"class_level" validate:"omitempty,max=40"`
	IsActive   *bool   `json:"is_active"`
}

func (r *UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassLevel != nil {
		m.ClassLevel = r.ClassLevel
	}
	if r.IsActive != nil {
		m.ClassIsActive = *r.IsActive
	}
}
