// file: internals/features/school/academics/enrollments/model/student_subject_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrolmen siswa ke satu mapel di kelasnya — syarat siswa boleh dinilai.
type StudentSubjectEnrollmentModel struct {
	StudentSubjectEnrollmentID       uuid.UUID `gorm:"column:student_subject_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_subject_enrollment_id"`
	StudentSubjectEnrollmentSchoolID uuid.UUID `gorm:"column:student_subject_enrollment_school_id;type:uuid;not null;index" json:"student_subject_enrollment_school_id"`

	StudentSubjectEnrollmentStudentID uuid.UUID `gorm:"column:student_subject_enrollment_student_id;type:uuid;not null;index:idx_sse_cohort,priority:3" json:"student_subject_enrollment_student_id"`
	StudentSubjectEnrollmentClassID   uuid.UUID `gorm:"column:student_subject_enrollment_class_id;type:uuid;not null;index:idx_sse_cohort,priority:1" json:"student_subject_enrollment_class_id"`
	StudentSubjectEnrollmentSubjectID uuid.UUID `gorm:"column:student_subject_enrollment_subject_id;type:uuid;not null;index:idx_sse_cohort,priority:2" json:"student_subject_enrollment_subject_id"`
	StudentSubjectEnrollmentSession   string    `gorm:"column:student_subject_enrollment_session;type:varchar(20);not null" json:"student_subject_enrollment_session"`

	StudentSubjectEnrollmentIsActive  bool           `gorm:"column:student_subject_enrollment_is_active;not null;default:true" json:"student_subject_enrollment_is_active"`
	StudentSubjectEnrollmentCreatedAt time.Time      `gorm:"column:student_subject_enrollment_created_at;not null;autoCreateTime" json:"student_subject_enrollment_created_at"`
	StudentSubjectEnrollmentUpdatedAt time.Time      `gorm:"column:student_subject_enrollment_updated_at;not null;autoUpdateTime" json:"student_subject_enrollment_updated_at"`
	StudentSubjectEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:student_subject_enrollment_deleted_at;index" json:"student_subject_enrollment_deleted_at,omitempty"`
}

func (StudentSubjectEnrollmentModel) TableName() string { return "student_subject_enrollments" }
