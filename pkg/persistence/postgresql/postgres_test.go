package postgresql_test

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/sree04/workflow-backend/pkg/models"
	"github.com/sree04/workflow-backend/pkg/persistence"
	"github.com/sree04/workflow-backend/pkg/persistence/postgresql"
)

var postgresContainer *postgres.PostgresContainer

func intPtr(v int) *int {
	return &v
}

func dropDB(ctx context.Context, t *testing.T, databaseURL string) {
	t.Helper()

	db, err := sql.Open("postgres", databaseURL)
	require.NoError(t, err)

	// Children first, parents last.
	for _, table := range []string{"wfd_stages_actions", "wfd_stages", "wfd_workflow_master", "schema_migrations"} {
		_, err = db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE")
		require.NoError(t, err)
	}

	err = db.Close()
	require.NoError(t, err)
}

func setupTestDB(t *testing.T) (*postgresql.Persistence, context.Context) {
	t.Helper()

	if os.Getenv("WFD_INTEGRATION_TESTS") == "" {
		t.Skip("set WFD_INTEGRATION_TESTS to run container-backed tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)

	if postgresContainer == nil || !postgresContainer.IsRunning() {
		var err error

		postgresContainer, err = postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("wfd_test"),
			postgres.WithUsername("wfd"),
			postgres.WithPassword("wfd"),
			postgres.BasicWaitStrategies(),
		)
		require.NoError(t, err)
	}

	databaseURL, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	dropDB(ctx, t, databaseURL)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	p, err := postgresql.NewPersistence(ctx, logger, databaseURL)
	require.NoError(t, err)

	t.Cleanup(func() {
		dropDB(ctx, t, databaseURL)

		err = p.Close(ctx)
		require.NoError(t, err)

		cancel()
	})

	return p, ctx
}

func TestPersistence_HealthCheck(t *testing.T) {
	p, ctx := setupTestDB(t)

	assert.NoError(t, p.HealthCheck(ctx))
}

func TestRepository_WorkflowLifecycle(t *testing.T) {
	p, ctx := setupTestDB(t)
	repo := p.WorkflowRepository()

	created, err := repo.CreateWorkflow(ctx, &models.Workflow{
		Name:        "Leave Approval",
		Description: "Employee leave requests",
		Status:      models.WorkflowStatusActive,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Stages)

	updated, err := repo.UpdateWorkflow(ctx, &models.Workflow{
		ID:          created.ID,
		Name:        "Leave Approval v2",
		Description: "Employee leave requests, revised",
		Status:      models.WorkflowStatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStatusInactive, updated.Status)

	workflows, err := repo.Workflows(ctx)
	require.NoError(t, err)
	require.Len(t, workflows, 1)
	assert.Equal(t, "Leave Approval v2", workflows[0].Name)

	require.NoError(t, repo.DeleteWorkflow(ctx, created.ID))

	_, err = repo.WorkflowByID(ctx, created.ID)
	assert.ErrorIs(t, err, persistence.ErrWorkflowNotFound)
}

func TestRepository_StageGraphAndCopy(t *testing.T) {
	p, ctx := setupTestDB(t)
	repo := p.WorkflowRepository()

	created, err := repo.CreateWorkflow(ctx, &models.Workflow{
		Name:        "Leave Approval",
		Description: "Employee leave requests",
		Status:      models.WorkflowStatusActive,
	})
	require.NoError(t, err)

	manager, err := repo.AddStage(ctx, created.ID, &models.Stage{
		SeqNo:       1,
		Name:        "Manager Approval",
		Description: "First line manager reviews the request",
		ActorType:   models.ActorTypeRole,
		RoleID:      intPtr(3),
		ActorCount:  1,
		AnyAllFlag:  models.DecisionModeAny,
		Actions: []*models.Action{
			{Name: "Approve", NextStageType: models.TransitionNext, RequiredCount: 1},
		},
	})
	require.NoError(t, err)

	_, err = repo.AddStage(ctx, created.ID, &models.Stage{
		SeqNo:       2,
		Name:        "HR Approval",
		Description: "HR signs off on the approved request",
		ActorType:   models.ActorTypeRole,
		RoleID:      intPtr(7),
		ActorCount:  2,
		AnyAllFlag:  models.DecisionModeAll,
		Actions: []*models.Action{
			{Name: "Approve", NextStageType: models.TransitionComplete, RequiredCount: 2},
			{Name: "Send Back", NextStageType: models.TransitionSpecific, NextStageID: intPtr(manager.ID), RequiredCount: 1},
		},
	})
	require.NoError(t, err)

	copied, err := repo.CopyWorkflow(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Leave Approval (Copy)", copied.Name)
	require.Len(t, copied.Stages, 2)
	assert.NotEqual(t, manager.ID, copied.Stages[0].ID)

	sendBack := copied.Stages[1].Actions[1]
	require.NotNil(t, sendBack.NextStageID)
	assert.Equal(t, copied.Stages[0].ID, *sendBack.NextStageID)

	// Cascade delete of the source leaves the copy intact.
	require.NoError(t, repo.DeleteWorkflow(ctx, created.ID))

	_, err = repo.StageByID(ctx, created.ID, manager.ID)
	assert.ErrorIs(t, err, persistence.ErrStageNotFound)

	survivor, err := repo.WorkflowByID(ctx, copied.ID)
	require.NoError(t, err)
	assert.Len(t, survivor.Stages, 2)
}
