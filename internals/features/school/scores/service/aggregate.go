// file: internals/features/school/scores/service/aggregate.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "schoolku_backend/internals/helpers"
)

/* =========================================================
   AGGREGATION ENGINE
   Semua agregat dihitung saat baca (tidak ada cache/denormalisasi):
   - total      : jumlah lima komponen
   - cohortSize : jumlah siswa enrolled (termasuk yang BELUM dinilai)
   - average    : rata-rata total dari siswa yang SUDAH dinilai saja
   - position   : dense rank descending by total; tanpa nilai → tanpa rank
   ========================================================= */

// CohortRow: satu siswa dalam cohort. Total nil = enrolled tapi belum dinilai.
type CohortRow struct {
	StudentID uuid.UUID  `gorm:"column:student_id" json:"student_id"`
	ScoreID   *uuid.UUID `gorm:"column:score_id" json:"score_id,omitempty"`
	Total     *float64   `gorm:"column:total" json:"total,omitempty"`
}

// CohortQuery: kunci cohort. Session/Term opsional — kalau kosong, agregasi
// melebar ke semua sesi/term untuk class+subject tsb (pemanggil harus sadar).
// Group difilter null-safe hanya kalau HasGroupFilter true.
type CohortQuery struct {
	SchoolID  uuid.UUID
	ClassID   uuid.UUID
	SubjectID uuid.UUID
	Session   string
	Term      string

	HasGroupFilter bool
	ClassGroup     *string
}

// ComputeTotal: jumlah lima komponen, murni, tanpa pembulatan.
func ComputeTotal(a1, a2, t1, t2, exam float64) float64 {
	return a1 + a2 + t1 + t2 + exam
}

// CohortAverage: rata-rata aritmetika dari total yang ADA.
// Cohort tanpa satu pun nilai → nil (bukan 0).
func CohortAverage(rows []CohortRow) *float64 {
	sum := 0.0
	n := 0
	for i := range rows {
		if rows[i].Total != nil {
			sum += *rows[i].Total
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// DenseRanks: peringkat dense descending by total. Nilai kembar berbagi rank,
// nilai distinct berikutnya rank+1 (tanpa lubang). Siswa tanpa total → nil.
func DenseRanks(rows []CohortRow) map[uuid.UUID]*int {
	totals := make([]float64, 0, len(rows))
	seen := make(map[float64]bool, len(rows))
	for i := range rows {
		if rows[i].Total != nil && !seen[*rows[i].Total] {
			seen[*rows[i].Total] = true
			totals = append(totals, *rows[i].Total)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(totals)))

	rankOf := make(map[float64]int, len(totals))
	for i, t := range totals {
		rankOf[t] = i + 1
	}

	out := make(map[uuid.UUID]*int, len(rows))
	for i := range rows {
		if rows[i].Total == nil {
			out[rows[i].StudentID] = nil
			continue
		}
		r := rankOf[*rows[i].Total]
		out[rows[i].StudentID] = &r
	}
	return out
}

// CohortViewEntry: satu baris getCohortView per siswa.
type CohortViewEntry struct {
	StudentID     uuid.UUID  `json:"student_id"`
	ScoreID       *uuid.UUID `json:"score_id,omitempty"`
	Total         *float64   `json:"total,omitempty"`
	TotalStudents int        `json:"total_students"`
	AvgTotal      *float64   `json:"avg_total,omitempty"`
	Position      *int       `json:"position,omitempty"`
}

// dedupeByStudent: satu baris per siswa. Tanpa filter term, store bisa
// mengembalikan satu baris per baris nilai (per term) untuk siswa yang sama;
// baris pertama yang dipakai — store mengurutkan total DESC NULLS LAST,
// jadi yang bertahan adalah total tertinggi siswa tsb.
func dedupeByStudent(rows []CohortRow) []CohortRow {
	seen := make(map[uuid.UUID]bool, len(rows))
	out := make([]CohortRow, 0, len(rows))
	for i := range rows {
		if seen[rows[i].StudentID] {
			continue
		}
		seen[rows[i].StudentID] = true
		out = append(out, rows[i])
	}
	return out
}

// BuildCohortView: rakit keempat agregat dari baris cohort. Murni.
// cohortSize = jumlah siswa DISTINCT, bukan jumlah baris.
func BuildCohortView(rows []CohortRow) []CohortViewEntry {
	rows = dedupeByStudent(rows)
	avg := CohortAverage(rows)
	ranks := DenseRanks(rows)
	size := len(rows)

	out := make([]CohortViewEntry, 0, len(rows))
	for i := range rows {
		out = append(out, CohortViewEntry{
			StudentID:     rows[i].StudentID,
			ScoreID:       rows[i].ScoreID,
			Total:         rows[i].Total,
			TotalStudents: size,
			AvgTotal:      avg,
			Position:      ranks[rows[i].StudentID],
		})
	}
	return out
}

// GetCohortRows: baca cohort dari store. Enrolmen aktif di-LEFT JOIN ke nilai
// supaya siswa yang belum dinilai tetap masuk hitungan cohortSize.
func GetCohortRows(ctx context.Context, db *gorm.DB, q CohortQuery) ([]CohortRow, error) {
	var rows []CohortRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			e.student_subject_enrollment_student_id AS student_id,
			s.student_score_id                      AS score_id,
			s.student_score_total                   AS total
		FROM student_subject_enrollments e
		JOIN student_class_memberships m
		  ON m.student_class_membership_student_id = e.student_subject_enrollment_student_id
		 AND m.student_class_membership_class_id   = e.student_subject_enrollment_class_id
		 AND m.student_class_membership_session    = e.student_subject_enrollment_session
		 AND m.student_class_membership_is_active  = TRUE
		 AND m.student_class_membership_deleted_at IS NULL
		LEFT JOIN student_scores s
		  ON s.student_score_student_id = e.student_subject_enrollment_student_id
		 AND s.student_score_class_id   = e.student_subject_enrollment_class_id
		 AND s.student_score_subject_id = e.student_subject_enrollment_subject_id
		 AND s.student_score_session    = e.student_subject_enrollment_session
		 AND (?::text = '' OR s.student_score_term = ?)
		 AND s.student_score_is_active  = TRUE
		 AND s.student_score_deleted_at IS NULL
		WHERE e.student_subject_enrollment_school_id  = ?
		  AND e.student_subject_enrollment_class_id   = ?
		  AND e.student_subject_enrollment_subject_id = ?
		  AND (?::text = '' OR e.student_subject_enrollment_session = ?)
		  AND e.student_subject_enrollment_is_active  = TRUE
		  AND e.student_subject_enrollment_deleted_at IS NULL
		  AND (?::boolean = FALSE OR m.student_class_membership_class_group IS NOT DISTINCT FROM ?::text)
		ORDER BY s.student_score_total DESC NULLS LAST,
		         e.student_subject_enrollment_student_id
	`,
		q.Term, q.Term,
		q.SchoolID, q.ClassID, q.SubjectID,
		q.Session, q.Session,
		q.HasGroupFilter, q.ClassGroup,
	).Scan(&rows).Error
	if err != nil {
		return nil, helper.StorageError(err, "Gagal membaca data cohort")
	}
	return rows, nil
}

// GetCohortView: baca + rakit. Path baca utama untuk endpoint cohort.
func GetCohortView(ctx context.Context, db *gorm.DB, q CohortQuery) ([]CohortViewEntry, error) {
	rows, err := GetCohortRows(ctx, db, q)
	if err != nil {
		return nil, err
	}
	return BuildCohortView(rows), nil
}
