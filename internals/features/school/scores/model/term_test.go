// file: internals/features/school/scores/model/term_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTerm(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1st", TermFirst, true},
		{"2nd", TermSecond, true},
		{"3rd", TermThird, true},
		{"First Term", TermFirst, true},
		{"second term", TermSecond, true},
		{"  Third Term  ", TermThird, true},
		{"4th", "", false},
		{"semester 1", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTerm(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTermLongForm(t *testing.T) {
	assert.Equal(t, "First Term", TermLongForm(TermFirst))
	assert.Equal(t, "Second Term", TermLongForm(TermSecond))
	assert.Equal(t, "Third Term", TermLongForm(TermThird))
	assert.Equal(t, "x", TermLongForm("x"))
}

func TestRecomputeTotal(t *testing.T) {
	m := StudentScoreModel{
		StudentScoreAssessment1: 10,
		StudentScoreAssessment2: 10,
		StudentScoreTest1:       10,
		StudentScoreTest2:       10,
		StudentScoreExam:        50,
		StudentScoreTotal:       999, // nilai lama diabaikan
	}
	m.RecomputeTotal()
	assert.Equal(t, 90.0, m.StudentScoreTotal)
}
