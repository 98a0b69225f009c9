// file: internals/features/school/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NOTE:
// - class_group (A/B/…) TIDAK di sini: group menempel di membership &
//   penugasan form teacher, bukan di master kelas.
// - soft delete pakai gorm.DeletedAt (map ke TIMESTAMPTZ)
type ClassModel struct {
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index" json:"class_school_id"`

	ClassName  string  `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`
	ClassLevel *string `gorm:"column:class_level;type:varchar(40)" json:"class_level,omitempty"`

	ClassIsActive  bool           `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
