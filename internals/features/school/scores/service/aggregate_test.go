// file: internals/features/school/scores/service/aggregate_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(total float64) CohortRow {
	id := uuid.New()
	sid := uuid.New()
	return CohortRow{StudentID: id, ScoreID: &sid, Total: &total}
}

func unscored() CohortRow {
	return CohortRow{StudentID: uuid.New()}
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name               string
		a1, a2, t1, t2, ex float64
		want               float64
	}{
		{"semua nol", 0, 0, 0, 0, 0, 0},
		{"nilai penuh", 10, 10, 10, 10, 60, 100},
		{"desimal", 7.5, 8.25, 6, 9.25, 40, 71},
		{"sebagian kosong", 0, 0, 0, 0, 55.5, 55.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.a1, tt.a2, tt.t1, tt.t2, tt.ex))
		})
	}
}

func TestCohortAverage(t *testing.T) {
	t.Run("cohort kosong", func(t *testing.T) {
		assert.Nil(t, CohortAverage(nil))
	})

	t.Run("semua belum dinilai", func(t *testing.T) {
		rows := []CohortRow{unscored(), unscored()}
		assert.Nil(t, CohortAverage(rows))
	})

	t.Run("yang belum dinilai tidak ikut rata-rata", func(t *testing.T) {
		rows := []CohortRow{scored(90), scored(85), unscored()}
		avg := CohortAverage(rows)
		require.NotNil(t, avg)
		assert.InDelta(t, 87.5, *avg, 1e-9)
	})

	t.Run("satu nilai", func(t *testing.T) {
		rows := []CohortRow{scored(72.5)}
		avg := CohortAverage(rows)
		require.NotNil(t, avg)
		assert.Equal(t, 72.5, *avg)
	})
}

func TestDenseRanks(t *testing.T) {
	t.Run("nilai kembar berbagi rank tanpa lubang", func(t *testing.T) {
		a, b, c := scored(90), scored(90), scored(80)
		ranks := DenseRanks([]CohortRow{a, b, c})

		require.NotNil(t, ranks[a.StudentID])
		require.NotNil(t, ranks[b.StudentID])
		require.NotNil(t, ranks[c.StudentID])
		assert.Equal(t, 1, *ranks[a.StudentID])
		assert.Equal(t, 1, *ranks[b.StudentID])
		assert.Equal(t, 2, *ranks[c.StudentID])
	})

	t.Run("tanpa nilai tanpa rank", func(t *testing.T) {
		s, u := scored(50), unscored()
		ranks := DenseRanks([]CohortRow{s, u})

		require.NotNil(t, ranks[s.StudentID])
		assert.Equal(t, 1, *ranks[s.StudentID])
		assert.Nil(t, ranks[u.StudentID])
	})

	t.Run("descending", func(t *testing.T) {
		lo, hi, mid := scored(10), scored(99), scored(50)
		ranks := DenseRanks([]CohortRow{lo, hi, mid})

		assert.Equal(t, 1, *ranks[hi.StudentID])
		assert.Equal(t, 2, *ranks[mid.StudentID])
		assert.Equal(t, 3, *ranks[lo.StudentID])
	})

	t.Run("cohort kosong", func(t *testing.T) {
		assert.Empty(t, DenseRanks(nil))
	})
}

func TestBuildCohortView(t *testing.T) {
	t.Run("cohort size termasuk yang belum dinilai", func(t *testing.T) {
		rows := []CohortRow{scored(90), scored(85), unscored()}
		view := BuildCohortView(rows)

		require.Len(t, view, 3)
		for _, e := range view {
			assert.Equal(t, 3, e.TotalStudents)
			require.NotNil(t, e.AvgTotal)
			assert.InDelta(t, 87.5, *e.AvgTotal, 1e-9)
		}
	})

	t.Run("entry belum dinilai: total, avg per-cohort, tanpa posisi", func(t *testing.T) {
		u := unscored()
		view := BuildCohortView([]CohortRow{scored(60), u})

		var entry *CohortViewEntry
		for i := range view {
			if view[i].StudentID == u.StudentID {
				entry = &view[i]
			}
		}
		require.NotNil(t, entry)
		assert.Nil(t, entry.Total)
		assert.Nil(t, entry.Position)
		assert.NotNil(t, entry.AvgTotal)
	})

	t.Run("cohort kosong", func(t *testing.T) {
		assert.Empty(t, BuildCohortView(nil))
	})

	t.Run("baris multi-term satu siswa diringkas distinct", func(t *testing.T) {
		// tanpa filter term, satu siswa bisa punya satu baris per term;
		// cohort size tetap per siswa dan total tertinggi yang dipakai
		// (baris datang terurut DESC dari store)
		firstTerm := scored(90)
		secondTerm := firstTerm
		lower := 80.0
		secondTerm.Total = &lower
		other := scored(85)

		view := BuildCohortView([]CohortRow{firstTerm, other, secondTerm})
		require.Len(t, view, 2)

		var entry *CohortViewEntry
		for i := range view {
			if view[i].StudentID == firstTerm.StudentID {
				entry = &view[i]
			}
		}
		require.NotNil(t, entry)
		assert.Equal(t, 2, entry.TotalStudents)
		require.NotNil(t, entry.Total)
		assert.Equal(t, 90.0, *entry.Total)
		require.NotNil(t, entry.Position)
		assert.Equal(t, 1, *entry.Position)
		require.NotNil(t, entry.AvgTotal)
		assert.InDelta(t, 87.5, *entry.AvgTotal, 1e-9)
	})
}
