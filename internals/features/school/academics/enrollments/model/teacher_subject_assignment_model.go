// file: internals/features/school/academics/enrollments/model/teacher_subject_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Penugasan guru mengajar satu mapel di satu kelas untuk satu sesi —
// dasar otorisasi entri nilai.
type TeacherSubjectAssignmentModel struct {
	TeacherSubjectAssignmentID       uuid.UUID `gorm:"column:teacher_subject_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_subject_assignment_id"`
	TeacherSubjectAssignmentSchoolID uuid.UUID `gorm:"column:teacher_subject_assignment_school_id;type:uuid;not null;index" json:"teacher_subject_assignment_school_id"`

	TeacherSubjectAssignmentTeacherID uuid.UUID `gorm:"column:teacher_subject_assignment_teacher_id;type:uuid;not null;index:idx_tsa_teacher_session,priority:1" json:"teacher_subject_assignment_teacher_id"`
	TeacherSubjectAssignmentClassID   uuid.UUID `gorm:"column:teacher_subject_assignment_class_id;type:uuid;not null" json:"teacher_subject_assignment_class_id"`
	TeacherSubjectAssignmentSubjectID uuid.UUID `gorm:"column:teacher_subject_assignment_subject_id;type:uuid;not null" json:"teacher_subject_assignment_subject_id"`
	TeacherSubjectAssignmentSession   string    `gorm:"column:teacher_subject_assignment_session;type:varchar(20);not null;index:idx_tsa_teacher_session,priority:2" json:"teacher_subject_assignment_session"`

	TeacherSubjectAssignmentIsActive  bool           `gorm:"column:teacher_subject_assignment_is_active;not null;default:true" json:"teacher_subject_assignment_is_active"`
	TeacherSubjectAssignmentCreatedAt time.Time      `gorm:"column:teacher_subject_assignment_created_at;not null;autoCreateTime" json:"teacher_subject_assignment_created_at"`
	TeacherSubjectAssignmentUpdatedAt time.Time      `gorm:"column:teacher_subject_assignment_updated_at;not null;autoUpdateTime" json:"teacher_subject_assignment_updated_at"`
	TeacherSubjectAssignmentDeletedAt gorm.DeletedAt `gorm:"column:teacher_subject_assignment_deleted_at;index" json:"teacher_subject_assignment_deleted_at,omitempty"`
}

func (TeacherSubjectAssignmentModel) TableName() string { return "teacher_subject_assignments" }
