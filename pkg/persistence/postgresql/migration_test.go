package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sree04/workflow-backend/pkg/models"
)

func intPtr(v int) *int {
	return &v
}

func TestMigrations_SchemaContent(t *testing.T) {
	m := migrations()
	require.Contains(t, m, 1)

	schema := m[1]

	assert.Contains(t, schema, "CREATE TABLE wfd_workflow_master")
	assert.Contains(t, schema, "CREATE TABLE wfd_stages")
	assert.Contains(t, schema, "CREATE TABLE wfd_stages_actions")

	// Enum-like columns are constrained at the store too.
	assert.Contains(t, schema, "wfd_status IN ('active', 'inactive')")
	assert.Contains(t, schema, "actor_type IN ('role', 'user')")
	assert.Contains(t, schema, "any_all_flag IN ('any', 'all')")
	assert.Contains(t, schema, "next_stage_type IN ('next', 'prev', 'complete', 'specific')")

	assert.Contains(t, schema, "CREATE INDEX idx_wfd_stages_wf_id")
	assert.Contains(t, schema, "CREATE INDEX idx_wfd_stages_seq")
	assert.Contains(t, schema, "CREATE INDEX idx_wfd_stages_actions_stage_id")
}

func TestRemapTarget(t *testing.T) {
	tests := []struct {
		name    string
		action  *models.Action
		mapping map[int]int
		want    *int
	}{
		{
			name:    "specific target remapped",
			action:  &models.Action{NextStageType: models.TransitionSpecific, NextStageID: intPtr(7)},
			mapping: map[int]int{7: 21},
			want:    intPtr(21),
		},
		{
			name:    "unmapped target dropped",
			action:  &models.Action{NextStageType: models.TransitionSpecific, NextStageID: intPtr(7)},
			mapping: map[int]int{},
			want:    nil,
		},
		{
			name:    "non-specific transition dropped",
			action:  &models.Action{NextStageType: models.TransitionNext, NextStageID: intPtr(7)},
			mapping: map[int]int{7: 21},
			want:    nil,
		},
		{
			name:    "specific without target dropped",
			action:  &models.Action{NextStageType: models.TransitionSpecific},
			mapping: map[int]int{7: 21},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := remapTarget(tt.action, tt.mapping)

			if tt.want == nil {
				assert.Nil(t, got)

				return
			}

			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
