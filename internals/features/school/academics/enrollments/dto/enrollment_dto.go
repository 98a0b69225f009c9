// file: internals/features/school/academics/enrollments/dto/enrollment_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/enrollments/model"
)

type CreateMembershipRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	ClassID    uuid.UUID `json:"class_id" validate:"required"`
	ClassGroup *string   `json:"class_group" validate:"omitempty,max=10"`
	Session    string    `json:"session" validate:"required,max=20"`
}

func (r *CreateMembershipRequest) ToModel(schoolID uuid.UUID) *model.StudentClassMembershipModel {
	return &model.StudentClassMembershipModel{
		StudentClassMembershipSchoolID:   schoolID,
		StudentClassMembershipStudentID:  r.StudentID,
		StudentClassMembershipClassID:    r.ClassID,
		StudentClassMembershipClassGroup: r.ClassGroup,
		StudentClassMembershipSession:    r.Session,
	}
}

type CreateSubjectEnrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Session   string    `json:"session" validate:"required,max=20"`
}

func (r *CreateSubjectEnrollmentRequest) ToModel(schoolID uuid.UUID) *model.StudentSubjectEnrollmentModel {
	return &model.StudentSubjectEnrollmentModel{
		StudentSubjectEnrollmentSchoolID:  schoolID,
		StudentSubjectEnrollmentStudentID: r.StudentID,
		StudentSubjectEnrollmentClassID:   r.ClassID,
		StudentSubjectEnrollmentSubjectID: r.SubjectID,
		StudentSubjectEnrollmentSession:   r.Session,
	}
}

type CreateTeacherAssignmentRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Session   string    `json:"session" validate:"required,max=20"`
}

func (r *CreateTeacherAssignmentRequest) ToModel(schoolID uuid.UUID) *model.TeacherSubjectAssignmentModel {
	return &model.TeacherSubjectAssignmentModel{
		TeacherSubjectAssignmentSchoolID:  schoolID,
		TeacherSubjectAssignmentTeacherID: r.TeacherID,
		TeacherSubjectAssignmentClassID:   r.ClassID,
		TeacherSubjectAssignmentSubjectID: r.SubjectID,
		TeacherSubjectAssignmentSession:   r.Session,
	}
}

type CreateFormTeacherRequest struct {
	TeacherID  uuid.UUID `json:"teacher_id" validate:"required"`
	ClassID    uuid.UUID `json:"class_id" validate:"required"`
	ClassGroup *string   `json:"class_group" validate:"omitempty,max=10"`
	Session    string    `json:"session" validate:"required,max=20"`
}

func (r *CreateFormTeacherRequest) ToModel(schoolID uuid.UUID) *model.FormTeacherAssignmentModel {
	return &model.FormTeacherAssignmentModel{
		FormTeacherAssignmentSchoolID:   schoolID,
		FormTeacherAssignmentTeacherID:  r.TeacherID,
		FormTeacherAssignmentClassID:    r.ClassID,
		FormTeacherAssignmentClassGroup: r.ClassGroup,
		FormTeacherAssignmentSession:    r.Session,
	}
}
