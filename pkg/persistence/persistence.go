// Package persistence defines the data storage abstraction for workflow
// definitions and the error vocabulary shared by its implementations.
package persistence

import (
	"context"

	"github.com/sree04/workflow-backend/pkg/models"
)

// WorkflowRepository owns CRUD operations on workflow definitions and their
// stage/action sub-graphs. Every operation touching more than one entity type
// runs as a single transaction against the underlying store: a failure at any
// step rolls back the whole operation.
//
// Stages are always returned ordered by sequence number; duplicate sequence
// numbers within a workflow are permitted and tie-broken by stage identifier
// ascending.
type WorkflowRepository interface {
	// Workflows returns all workflows with their full stage/action graphs,
	// ordered by workflow identifier.
	Workflows(ctx context.Context) ([]*models.Workflow, error)

	// WorkflowByID returns the full graph of one workflow, or
	// ErrWorkflowNotFound.
	WorkflowByID(ctx context.Context, id int) (*models.Workflow, error)

	// CreateWorkflow inserts a workflow with no stages and returns it with
	// its store-assigned identifier.
	CreateWorkflow(ctx context.Context, workflow *models.Workflow) (*models.Workflow, error)

	// UpdateWorkflow replaces the three scalar fields of a workflow. Stages
	// are untouched. Returns ErrWorkflowNotFound if no row matched.
	UpdateWorkflow(ctx context.Context, workflow *models.Workflow) (*models.Workflow, error)

	// DeleteWorkflow deletes, in one transaction, all actions of the
	// workflow's stages, then the stages, then the workflow row. The
	// ordering (actions, stages, workflow) is an invariant, not an
	// implementation detail. Returns ErrWorkflowNotFound (after rollback)
	// if the workflow row did not exist.
	DeleteWorkflow(ctx context.Context, id int) error

	// AddStage validates the payload against the workflow's committed stage
	// identifiers, then inserts the stage and its actions in one
	// transaction. The returned stage carries store-assigned identifiers.
	AddStage(ctx context.Context, workflowID int, stage *models.Stage) (*models.Stage, error)

	// UpdateStage validates the payload (the stage under edit is a legal
	// "specific" target for its own actions), updates the stage row, and
	// atomically replaces its full action set. Returns ErrStageNotFound if
	// the update matched zero rows.
	UpdateStage(ctx context.Context, workflowID, stageID int, stage *models.Stage) (*models.Stage, error)

	// DeleteStage deletes the stage's actions and then the stage row,
	// filtered by both stage and workflow identifier. Returns
	// ErrStageNotFound if zero rows were affected.
	DeleteStage(ctx context.Context, workflowID, stageID int) error

	// StageByID returns one stage with its actions, or ErrStageNotFound.
	StageByID(ctx context.Context, workflowID, stageID int) (*models.Stage, error)

	// StageActions returns the actions of a stage.
	StageActions(ctx context.Context, stageID int) ([]*models.Action, error)

	// CopyWorkflow deep-copies a workflow under fresh identifiers in one
	// transaction: the new workflow's name carries a " (Copy)" suffix,
	// stages keep their sequence numbers, and "specific" transition targets
	// are rewritten through the old-to-new stage identifier mapping.
	// Forward references, whose mapping does not exist yet at copy time,
	// degrade to null.
	CopyWorkflow(ctx context.Context, id int) (*models.Workflow, error)
}

// Persistence is the injected store handle with explicit lifecycle: opened on
// startup, closed on shutdown. The core never reaches into ambient global
// state.
type Persistence interface {
	WorkflowRepository() WorkflowRepository

	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}
