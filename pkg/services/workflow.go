package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sree04/workflow-backend/pkg/models"
	"github.com/sree04/workflow-backend/pkg/persistence"
)

// Workflow exposes the repository and clone operations to the API layer.
// Inputs arrive deserialized but not yet validated; validation runs inside
// the repository operation, before anything is persisted.
type Workflow struct {
	persistence persistence.Persistence
	logger      *slog.Logger
}

// NewWorkflow creates a new workflow service.
func NewWorkflow(persistence persistence.Persistence, logger *slog.Logger) *Workflow {
	return &Workflow{
		persistence: persistence,
		logger:      logger,
	}
}

// HealthCheck checks the health of the persistence layer.
func (w *Workflow) HealthCheck(ctx context.Context) (string, bool) {
	if w.persistence == nil {
		return "Persistence layer not initialized", false
	}

	err := w.persistence.HealthCheck(ctx)
	if err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

// List returns all workflows with their full stage/action graphs.
func (w *Workflow) List(ctx context.Context) ([]*models.Workflow, error) {
	return w.persistence.WorkflowRepository().Workflows(ctx)
}

// Fetch returns one workflow's full graph.
func (w *Workflow) Fetch(ctx context.Context, id int) (*models.Workflow, error) {
	return w.persistence.WorkflowRepository().WorkflowByID(ctx, id)
}

// Create inserts a new workflow with an empty stage list.
func (w *Workflow) Create(ctx context.Context, workflow *models.Workflow) (*models.Workflow, error) {
	logger := w.opLogger("create_workflow")
	logger.InfoContext(ctx, "Creating workflow", "name", workflow.Name)

	created, err := w.persistence.WorkflowRepository().CreateWorkflow(ctx, workflow)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create workflow", "error", err)

		return nil, err
	}

	logger.InfoContext(ctx, "Workflow created", "workflow_id", created.ID)

	return created, nil
}

// Update replaces a workflow's scalar fields.
func (w *Workflow) Update(ctx context.Context, workflow *models.Workflow) (*models.Workflow, error) {
	logger := w.opLogger("update_workflow")
	logger.InfoContext(ctx, "Updating workflow", "workflow_id", workflow.ID)

	updated, err := w.persistence.WorkflowRepository().UpdateWorkflow(ctx, workflow)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update workflow", "workflow_id", workflow.ID, "error", err)

		return nil, err
	}

	return updated, nil
}

// Delete removes a workflow and all its stages and actions.
func (w *Workflow) Delete(ctx context.Context, id int) error {
	logger := w.opLogger("delete_workflow")
	logger.InfoContext(ctx, "Deleting workflow", "workflow_id", id)

	err := w.persistence.WorkflowRepository().DeleteWorkflow(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete workflow", "workflow_id", id, "error", err)

		return err
	}

	logger.InfoContext(ctx, "Workflow deleted", "workflow_id", id)

	return nil
}

// AddStage validates and inserts a stage with its actions.
func (w *Workflow) AddStage(ctx context.Context, workflowID int, stage *models.Stage) (*models.Stage, error) {
	logger := w.opLogger("add_stage")
	logger.InfoContext(ctx, "Adding stage", "workflow_id", workflowID, "seq_no", stage.SeqNo)

	created, err := w.persistence.WorkflowRepository().AddStage(ctx, workflowID, stage)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to add stage", "workflow_id", workflowID, "error", err)

		return nil, err
	}

	logger.InfoContext(ctx, "Stage added", "workflow_id", workflowID, "stage_id", created.ID)

	return created, nil
}

// UpdateStage validates and updates a stage, replacing its action set.
func (w *Workflow) UpdateStage(ctx context.Context, workflowID, stageID int, stage *models.Stage) (*models.Stage, error) {
	logger := w.opLogger("update_stage")
	logger.InfoContext(ctx, "Updating stage", "workflow_id", workflowID, "stage_id", stageID)

	updated, err := w.persistence.WorkflowRepository().UpdateStage(ctx, workflowID, stageID, stage)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update stage", "workflow_id", workflowID, "stage_id", stageID, "error", err)

		return nil, err
	}

	return updated, nil
}

// DeleteStage removes a stage and its actions.
func (w *Workflow) DeleteStage(ctx context.Context, workflowID, stageID int) error {
	logger := w.opLogger("delete_stage")
	logger.InfoContext(ctx, "Deleting stage", "workflow_id", workflowID, "stage_id", stageID)

	err := w.persistence.WorkflowRepository().DeleteStage(ctx, workflowID, stageID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete stage", "workflow_id", workflowID, "stage_id", stageID, "error", err)

		return err
	}

	return nil
}

// FetchStage returns one stage with its actions.
func (w *Workflow) FetchStage(ctx context.Context, workflowID, stageID int) (*models.Stage, error) {
	return w.persistence.WorkflowRepository().StageByID(ctx, workflowID, stageID)
}

// FetchStageActions returns the actions of a stage.
func (w *Workflow) FetchStageActions(ctx context.Context, stageID int) ([]*models.Action, error) {
	return w.persistence.WorkflowRepository().StageActions(ctx, stageID)
}

// Copy duplicates a workflow with its whole stage graph under fresh
// identifiers.
func (w *Workflow) Copy(ctx context.Context, id int) (*models.Workflow, error) {
	logger := w.opLogger("copy_workflow")
	logger.InfoContext(ctx, "Copying workflow", "workflow_id", id)

	copied, err := w.persistence.WorkflowRepository().CopyWorkflow(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to copy workflow", "workflow_id", id, "error", err)

		return nil, err
	}

	logger.InfoContext(ctx, "Workflow copied", "workflow_id", id, "copy_id", copied.ID, "stages", len(copied.Stages))

	return copied, nil
}

// opLogger tags log records of one operation with a correlation id so the
// multi-statement repository operations can be traced end to end.
func (w *Workflow) opLogger(op string) *slog.Logger {
	return w.logger.With("operation", op, "correlation_id", uuid.NewString())
}
