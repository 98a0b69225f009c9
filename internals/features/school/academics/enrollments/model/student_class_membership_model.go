// file: internals/features/school/academics/enrollments/model/student_class_membership_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Keanggotaan siswa di sebuah kelas untuk satu sesi ajaran.
// class_group (A/B/…) membagi kelas jadi rombongan paralel; nullable —
// perbandingan group selalu null-safe (dua NULL dianggap sama).
type StudentClassMembershipModel struct {
	StudentClassMembershipID       uuid.UUID `gorm:"column:student_class_membership_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_class_membership_id"`
	StudentClassMembershipSchoolID uuid.UUID `gorm:"column:student_class_membership_school_id;type:uuid;not null;index" json:"student_class_membership_school_id"`

	StudentClassMembershipStudentID  uuid.UUID `gorm:"column:student_class_membership_student_id;type:uuid;not null;index:idx_scm_student_session,priority:1" json:"student_class_membership_student_id"`
	StudentClassMembershipClassID    uuid.UUID `gorm:"column:student_class_membership_class_id;type:uuid;not null;index:idx_scm_class_session,priority:1" json:"student_class_membership_class_id"`
	StudentClassMembershipClassGroup *string   `gorm:"column:student_class_membership_class_group;type:varchar(10)" json:"student_class_membership_class_group,omitempty"`
	StudentClassMembershipSession    string    `gorm:"column:student_class_membership_session;type:varchar(20);not null;index:idx_scm_student_session,priority:2;index:idx_scm_class_session,priority:2" json:"student_class_membership_session"`

	StudentClassMembershipIsActive  bool           `gorm:"column:student_class_membership_is_active;not null;default:true" json:"student_class_membership_is_active"`
	StudentClassMembershipCreatedAt time.Time      `gorm:"column:student_class_membership_created_at;not null;autoCreateTime" json:"student_class_membership_created_at"`
	StudentClassMembershipUpdatedAt time.Time      `gorm:"column:student_class_membership_updated_at;not null;autoUpdateTime" json:"student_class_membership_updated_at"`
	StudentClassMembershipDeletedAt gorm.DeletedAt `gorm:"column:student_class_membership_deleted_at;index" json:"student_class_membership_deleted_at,omitempty"`
}

func (StudentClassMembershipModel) TableName() string { return "student_class_memberships" }
