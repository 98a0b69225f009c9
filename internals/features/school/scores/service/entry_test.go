// file: internals/features/school/scores/service/entry_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	scoreModel "schoolku_backend/internals/features/school/scores/model"
)

func TestIsDuplicateErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pg unique violation", errors.New(`ERROR: duplicate key value violates unique constraint "uq_student_scores_natural_key" (SQLSTATE 23505)`), true},
		{"sqlstate saja", errors.New("SQLSTATE 23505"), true},
		{"pesan unique generik", errors.New("UNIQUE constraint failed"), true},
		{"error lain", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateErr(tt.err))
		})
	}
}

func TestApplyComponents(t *testing.T) {
	var m scoreModel.StudentScoreModel
	applyComponents(&m, ScoreComponents{
		Assessment1: 8,
		Assessment2: 7.5,
		Test1:       9,
		Test2:       10,
		Exam:        55,
	})

	assert.Equal(t, 8.0, m.StudentScoreAssessment1)
	assert.Equal(t, 7.5, m.StudentScoreAssessment2)
	assert.Equal(t, 89.5, m.StudentScoreTotal)

	// timpa ulang: total ikut dihitung ulang, bukan diakumulasi
	applyComponents(&m, ScoreComponents{Exam: 40})
	assert.Equal(t, 40.0, m.StudentScoreTotal)
	assert.Equal(t, 0.0, m.StudentScoreAssessment1)
}
