// file: internals/features/school/academics/enrollments/model/form_teacher_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wali kelas (form teacher) untuk satu kelas+group+sesi — satu-satunya
// peran yang boleh approve hasil. Unik per (class, group, session) selama
// baris belum soft-deleted (partial unique index di migrasi SQL).
type FormTeacherAssignmentModel struct {
	FormTeacherAssignmentID       uuid.UUID `gorm:"column:form_teacher_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"form_teacher_assignment_id"`
	FormTeacherAssignmentSchoolID uuid.UUID `gorm:"column:form_teacher_assignment_school_id;type:uuid;not null;index" json:"form_teacher_assignment_school_id"`

	FormTeacherAssignmentTeacherID  uuid.UUID `gorm:"column:form_teacher_assignment_teacher_id;type:uuid;not null;index:idx_fta_teacher_session,priority:1" json:"form_teacher_assignment_teacher_id"`
	FormTeacherAssignmentClassID    uuid.UUID `gorm:"column:form_teacher_assignment_class_id;type:uuid;not null" json:"form_teacher_assignment_class_id"`
	FormTeacherAssignmentClassGroup *string   `gorm:"column:form_teacher_assignment_class_group;type:varchar(10)" json:"form_teacher_assignment_class_group,omitempty"`
	FormTeacherAssignmentSession    string    `gorm:"column:form_teacher_assignment_session;type:varchar(20);not null;index:idx_fta_teacher_session,priority:2" json:"form_teacher_assignment_session"`

	FormTeacherAssignmentIsActive  bool           `gorm:"column:form_teacher_assignment_is_active;not null;default:true" json:"form_teacher_assignment_is_active"`
	FormTeacherAssignmentCreatedAt time.Time      `gorm:"column:form_teacher_assignment_created_at;not null;autoCreateTime" json:"form_teacher_assignment_created_at"`
	FormTeacherAssignmentUpdatedAt time.Time      `gorm:"column:form_teacher_assignment_updated_at;not null;autoUpdateTime" json:"form_teacher_assignment_updated_at"`
	FormTeacherAssignmentDeletedAt gorm.DeletedAt `gorm:"column:form_teacher_assignment_deleted_at;index" json:"form_teacher_assignment_deleted_at,omitempty"`
}

func (FormTeacherAssignmentModel) TableName() string { return "form_teacher_assignments" }
