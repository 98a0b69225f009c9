// file: internals/features/school/results/service/approval_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resultModel "schoolku_backend/internals/features/school/results/model"
)

func TestNewApprovalStatus(t *testing.T) {
	group := "A"

	t.Run("wali kelas tetap can_approve setelah scope approved", func(t *testing.T) {
		st := newApprovalStatus(&group, true, &resultModel.ResultSummaryModel{
			ResultSummaryTerm:   "1st",
			ResultSummaryStatus: resultModel.ResultSummaryStatusApproved,
		})
		assert.True(t, st.Approved)
		assert.True(t, st.CanApprove)
		require.NotNil(t, st.Summary)
	})

	t.Run("wali kelas pada scope open", func(t *testing.T) {
		st := newApprovalStatus(&group, true, nil)
		assert.False(t, st.Approved)
		assert.True(t, st.CanApprove)
		assert.Nil(t, st.Summary)
	})

	t.Run("bukan wali kelas hanya baca status", func(t *testing.T) {
		st := newApprovalStatus(nil, false, nil)
		assert.False(t, st.Approved)
		assert.False(t, st.CanApprove)
		assert.Nil(t, st.ClassGroup)
	})
}
