// file: internals/features/school/academics/subjects/model/class_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mapel yang dibuka di sebuah kelas (katalog penawaran, bukan enrolmen siswa).
type ClassSubjectModel struct {
	ClassSubjectID       uuid.UUID `gorm:"column:class_subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_subject_id"`
	ClassSubjectSchoolID uuid.UUID `gorm:"column:class_subject_school_id;type:uuid;not null;index" json:"class_subject_school_id"`

	ClassSubjectClassID   uuid.UUID `gorm:"column:class_subject_class_id;type:uuid;not null;index:idx_class_subjects_class" json:"class_subject_class_id"`
	ClassSubjectSubjectID uuid.UUID `gorm:"column:class_subject_subject_id;type:uuid;not null;index:idx_class_subjects_subject" json:"class_subject_subject_id"`

	ClassSubjectIsActive  bool           `gorm:"column:class_subject_is_active;not null;default:true" json:"class_subject_is_active"`
	ClassSubjectCreatedAt time.Time      `gorm:"column:class_subject_created_at;not null;autoCreateTime" json:"class_subject_created_at"`
	ClassSubjectUpdatedAt time.Time      `gorm:"column:class_subject_updated_at;not null;autoUpdateTime" json:"class_subject_updated_at"`
	ClassSubjectDeletedAt gorm.DeletedAt `gorm:"column:class_subject_deleted_at;index" json:"class_subject_deleted_at,omitempty"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
