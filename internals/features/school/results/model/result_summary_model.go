// file: internals/features/school/results/model/result_summary_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const ResultSummaryStatusApproved = "approved"

// Snapshot approval hasil per scope (class, group, session, term, school).
// Keberadaan baris = scope sudah approved; tidak ada baris = masih open.
// Baris ini immutable: tidak ada path update/delete — approve ulang hanya
// mengembalikan baris yang sudah ada. Scope dijaga unik oleh
// uq_result_summaries_scope (NULLS NOT DISTINCT di migrasi SQL, supaya
// group NULL tetap satu scope); pelanggaran unik saat insert
// diterjemahkan jadi "sudah approved", bukan error.
type ResultSummaryModel struct {
	ResultSummaryID       uuid.UUID `gorm:"column:result_summary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"result_summary_id"`
	ResultSummarySchoolID uuid.UUID `gorm:"column:result_summary_school_id;type:uuid;not null;uniqueIndex:uq_result_summaries_scope,priority:1" json:"result_summary_school_id"`

	ResultSummaryClassID    uuid.UUID `gorm:"column:result_summary_class_id;type:uuid;not null;uniqueIndex:uq_result_summaries_scope,priority:2" json:"result_summary_class_id"`
	ResultSummaryClassGroup *string   `gorm:"column:result_summary_class_group;type:varchar(10);uniqueIndex:uq_result_summaries_scope,priority:3" json:"result_summary_class_group,omitempty"`
	ResultSummarySession    string    `gorm:"column:result_summary_session;type:varchar(20);not null;uniqueIndex:uq_result_summaries_scope,priority:4" json:"result_summary_session"`
	ResultSummaryTerm       string    `gorm:"column:result_summary_term;type:varchar(10);not null;uniqueIndex:uq_result_summaries_scope,priority:5" json:"result_summary_term"`

	ResultSummaryTotalStudents int      `gorm:"column:result_summary_total_students;not null;default:0" json:"result_summary_total_students"`
	ResultSummaryTotalScore    float64  `gorm:"column:result_summary_total_score;type:numeric(12,2);not null;default:0" json:"result_summary_total_score"`
	ResultSummaryAverageScore  *float64 `gorm:"column:result_summary_average_score;type:numeric(7,2)" json:"result_summary_average_score,omitempty"`

	ResultSummaryStatus     string    `gorm:"column:result_summary_status;type:varchar(20);not null;default:approved" json:"result_summary_status"`
	ResultSummaryApprovedBy uuid.UUID `gorm:"column:result_summary_approved_by;type:uuid;not null" json:"result_summary_approved_by"`
	ResultSummaryApprovedAt time.Time `gorm:"column:result_summary_approved_at;not null;autoCreateTime" json:"result_summary_approved_at"`
}

func (ResultSummaryModel) TableName() string { return "result_summaries" }
