package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"github.com/sree04/workflow-backend/pkg/models"
	"github.com/sree04/workflow-backend/pkg/persistence"
	"github.com/sree04/workflow-backend/pkg/validation"
)

// copyNameSuffix is appended to a workflow's name when it is duplicated.
const copyNameSuffix = " (Copy)"

const stageColumns = `idwfd_stages, wf_id, seq_no, stage_name, stage_desc, no_of_uploads,
	actor_type, actor_count, any_all_flag, conflict_check, document_required, role_id, user_id`

const actionColumns = `idwfd_stages_actions, stage_id, action_name, action_desc,
	next_stage_type, next_stage_id, required_count, role_id, user_id`

// WorkflowRepository handles workflow-definition database operations. Every
// operation that touches more than one entity type runs in one transaction.
type WorkflowRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewWorkflowRepository creates a new workflow repository.
func NewWorkflowRepository(db *sql.DB, logger *slog.Logger) *WorkflowRepository {
	return &WorkflowRepository{db: db, logger: logger}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Workflows returns all workflows with their full stage/action graphs,
// ordered by workflow identifier.
func (r *WorkflowRepository) Workflows(ctx context.Context) ([]*models.Workflow, error) {
	query := `
		SELECT workflow_master_id, wfd_name, wfd_desc, wfd_status
		FROM wfd_workflow_master
		ORDER BY workflow_master_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflows: %w", err)
	}

	defer r.closeRows(ctx, rows)

	workflows := make([]*models.Workflow, 0)

	for rows.Next() {
		workflow, err := scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}

		workflows = append(workflows, workflow)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workflows: %w", err)
	}

	for _, workflow := range workflows {
		workflow.Stages, err = r.loadStages(ctx, r.db, workflow.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stages for workflow %d: %w", workflow.ID, err)
		}
	}

	return workflows, nil
}

// WorkflowByID returns the full graph of one workflow.
func (r *WorkflowRepository) WorkflowByID(ctx context.Context, id int) (*models.Workflow, error) {
	workflow, err := r.workflowRow(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	workflow.Stages, err = r.loadStages(ctx, r.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load stages for workflow %d: %w", id, err)
	}

	return workflow, nil
}

// CreateWorkflow inserts a workflow with no stages.
func (r *WorkflowRepository) CreateWorkflow(ctx context.Context, workflow *models.Workflow) (*models.Workflow, error) {
	if err := validation.ValidateWorkflow(workflow); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO wfd_workflow_master (wfd_name, wfd_desc, wfd_status)
		VALUES ($1, $2, $3)
		RETURNING workflow_master_id
	`

	var id int

	err := r.db.QueryRowContext(ctx, query, workflow.Name, workflow.Description, workflow.Status).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert workflow: %w", err)
	}

	created := &models.Workflow{
		ID:          id,
		Name:        workflow.Name,
		Description: workflow.Description,
		Status:      workflow.Status,
		Stages:      []*models.Stage{},
	}

	return created, nil
}

// UpdateWorkflow replaces the three scalar fields of a workflow.
func (r *WorkflowRepository) UpdateWorkflow(ctx context.Context, workflow *models.Workflow) (*models.Workflow, error) {
	if err := validation.ValidateWorkflow(workflow); err != nil {
		return nil, err
	}

	query := `
		UPDATE wfd_workflow_master
		SET wfd_name = $1, wfd_desc = $2, wfd_status = $3
		WHERE workflow_master_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, workflow.Name, workflow.Description, workflow.Status, workflow.ID)
	if err != nil {
		return nil, persistence.NewWorkflowError("UpdateWorkflow", workflow.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return nil, persistence.ErrWorkflowNotFound
	}

	updated := &models.Workflow{
		ID:          workflow.ID,
		Name:        workflow.Name,
		Description: workflow.Description,
		Status:      workflow.Status,
		Stages:      []*models.Stage{},
	}

	return updated, nil
}

// DeleteWorkflow removes a workflow and all its dependents in one
// transaction: actions first, then stages, then the workflow row.
func (r *WorkflowRepository) DeleteWorkflow(ctx context.Context, id int) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stageIDs, err := r.stageIDList(ctx, tx, id)
	if err != nil {
		return persistence.NewWorkflowError("DeleteWorkflow", id, err)
	}

	if len(stageIDs) > 0 {
		_, err = tx.ExecContext(ctx, `DELETE FROM wfd_stages_actions WHERE stage_id = ANY($1)`, pq.Array(stageIDs))
		if err != nil {
			return persistence.NewWorkflowError("DeleteWorkflow", id, fmt.Errorf("failed to delete actions: %w", err))
		}
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM wfd_stages WHERE wf_id = $1`, id)
	if err != nil {
		return persistence.NewWorkflowError("DeleteWorkflow", id, fmt.Errorf("failed to delete stages: %w", err))
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM wfd_workflow_master WHERE workflow_master_id = $1`, id)
	if err != nil {
		return persistence.NewWorkflowError("DeleteWorkflow", id, fmt.Errorf("failed to delete workflow: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		err = persistence.ErrWorkflowNotFound

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddStage validates the payload against the workflow's committed stage
// identifiers, then inserts the stage and its full action set atomically.
func (r *WorkflowRepository) AddStage(ctx context.Context, workflowID int, stage *models.Stage) (result *models.Stage, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = r.workflowRow(ctx, tx, workflowID); err != nil {
		return nil, err
	}

	allowedTargets, err := r.stageIDSet(ctx, tx, workflowID, 0)
	if err != nil {
		return nil, persistence.NewWorkflowError("AddStage", workflowID, err)
	}

	if err = validation.ValidateStage(stage, allowedTargets, 0); err != nil {
		return nil, err
	}

	inserted, err := r.insertStage(ctx, tx, workflowID, stage)
	if err != nil {
		return nil, persistence.NewWorkflowError("AddStage", workflowID, err)
	}

	inserted.Actions, err = r.insertActions(ctx, tx, inserted.ID, stage.Actions)
	if err != nil {
		return nil, persistence.NewWorkflowError("AddStage", workflowID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return inserted, nil
}

// UpdateStage validates the payload, updates the stage row, and replaces its
// action set, all inside one transaction. The stage under edit is excluded
// from the pre-existing target pool but remains a legal target for its own
// actions.
func (r *WorkflowRepository) UpdateStage(ctx context.Context, workflowID, stageID int, stage *models.Stage) (result *models.Stage, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	allowedTargets, err := r.stageIDSet(ctx, tx, workflowID, stageID)
	if err != nil {
		return nil, persistence.NewStageError("UpdateStage", workflowID, stageID, err)
	}

	if err = validation.ValidateStage(stage, allowedTargets, stageID); err != nil {
		return nil, err
	}

	updateQuery := `
		UPDATE wfd_stages
		SET seq_no = $1, stage_name = $2, stage_desc = $3, no_of_uploads = $4,
			actor_type = $5, actor_count = $6, any_all_flag = $7,
			conflict_check = $8, document_required = $9, role_id = $10, user_id = $11
		WHERE idwfd_stages = $12 AND wf_id = $13
	`

	updateResult, err := tx.ExecContext(ctx, updateQuery,
		stage.SeqNo,
		stage.Name,
		stage.Description,
		stage.NoOfUploads,
		stage.ActorType,
		stage.ActorCount,
		stage.AnyAllFlag,
		stage.ConflictCheck,
		stage.DocumentRequired,
		stage.RoleID,
		stage.UserID,
		stageID,
		workflowID,
	)
	if err != nil {
		return nil, persistence.NewStageError("UpdateStage", workflowID, stageID, err)
	}

	affected, err := updateResult.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		err = persistence.ErrStageNotFound

		return nil, err
	}

	// Replace the full action set: no partial action sets persist.
	_, err = tx.ExecContext(ctx, `DELETE FROM wfd_stages_actions WHERE stage_id = $1`, stageID)
	if err != nil {
		return nil, persistence.NewStageError("UpdateStage", workflowID, stageID, fmt.Errorf("failed to delete existing actions: %w", err))
	}

	updated := stageFromPayload(workflowID, stageID, stage)

	updated.Actions, err = r.insertActions(ctx, tx, stageID, stage.Actions)
	if err != nil {
		return nil, persistence.NewStageError("UpdateStage", workflowID, stageID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// DeleteStage removes a stage and its actions in one transaction.
func (r *WorkflowRepository) DeleteStage(ctx context.Context, workflowID, stageID int) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `DELETE FROM wfd_stages_actions WHERE stage_id = $1`, stageID)
	if err != nil {
		return persistence.NewStageError("DeleteStage", workflowID, stageID, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM wfd_stages WHERE idwfd_stages = $1 AND wf_id = $2`, stageID, workflowID)
	if err != nil {
		return persistence.NewStageError("DeleteStage", workflowID, stageID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		err = persistence.ErrStageNotFound

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// StageByID returns one stage with its actions.
func (r *WorkflowRepository) StageByID(ctx context.Context, workflowID, stageID int) (*models.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM wfd_stages WHERE idwfd_stages = $1 AND wf_id = $2`

	stage, err := scanStage(r.db.QueryRowContext(ctx, query, stageID, workflowID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrStageNotFound
		}

		return nil, fmt.Errorf("failed to scan stage: %w", err)
	}

	stage.Actions, err = r.StageActions(ctx, stageID)
	if err != nil {
		return nil, err
	}

	return stage, nil
}

// StageActions returns the actions of a stage, ordered by identifier.
func (r *WorkflowRepository) StageActions(ctx context.Context, stageID int) ([]*models.Action, error) {
	return r.loadActions(ctx, r.db, stageID)
}

// CopyWorkflow duplicates a workflow, its stages, and their actions under
// fresh identifiers inside one transaction. Stages are copied in sequence
// order and an old-to-new identifier mapping rewrites "specific" transition
// targets; a forward reference, whose mapping does not yet exist at copy
// time, degrades to null rather than leaking the source identifier.
func (r *WorkflowRepository) CopyWorkflow(ctx context.Context, id int) (result *models.Workflow, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	source, err := r.workflowRow(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	copied := &models.Workflow{
		Name:        source.Name + copyNameSuffix,
		Description: source.Description,
		Status:      source.Status,
		Stages:      []*models.Stage{},
	}

	insertQuery := `
		INSERT INTO wfd_workflow_master (wfd_name, wfd_desc, wfd_status)
		VALUES ($1, $2, $3)
		RETURNING workflow_master_id
	`

	err = tx.QueryRowContext(ctx, insertQuery, copied.Name, copied.Description, copied.Status).Scan(&copied.ID)
	if err != nil {
		return nil, persistence.NewWorkflowError("CopyWorkflow", id, fmt.Errorf("failed to insert workflow copy: %w", err))
	}

	sourceStages, err := r.loadStages(ctx, tx, id)
	if err != nil {
		return nil, persistence.NewWorkflowError("CopyWorkflow", id, err)
	}

	actionQuery := `
		INSERT INTO wfd_stages_actions
			(stage_id, action_name, action_desc, next_stage_type, next_stage_id, required_count, role_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING idwfd_stages_actions
	`

	// Stages are copied in sequence order, each followed immediately by its
	// actions, so the identifier mapping only covers stages copied so far: a
	// forward reference finds no entry and degrades to null instead of
	// leaking the source identifier.
	stageMapping := make(map[int]int, len(sourceStages))

	for _, sourceStage := range sourceStages {
		copiedStage, err := r.insertStage(ctx, tx, copied.ID, sourceStage)
		if err != nil {
			return nil, persistence.NewWorkflowError("CopyWorkflow", id, err)
		}

		stageMapping[sourceStage.ID] = copiedStage.ID
		copiedStage.Actions = make([]*models.Action, 0, len(sourceStage.Actions))

		for _, action := range sourceStage.Actions {
			target := remapTarget(action, stageMapping)

			copiedAction := &models.Action{
				StageID:       copiedStage.ID,
				Name:          action.Name,
				Description:   action.Description,
				NextStageType: action.NextStageType,
				NextStageID:   target,
				RequiredCount: action.RequiredCount,
				RoleID:        action.RoleID,
				UserID:        action.UserID,
			}

			err = tx.QueryRowContext(ctx, actionQuery,
				copiedAction.StageID,
				copiedAction.Name,
				copiedAction.Description,
				copiedAction.NextStageType,
				copiedAction.NextStageID,
				copiedAction.RequiredCount,
				copiedAction.RoleID,
				copiedAction.UserID,
			).Scan(&copiedAction.ID)
			if err != nil {
				return nil, persistence.NewWorkflowError("CopyWorkflow", id, fmt.Errorf("failed to copy action: %w", err))
			}

			copiedStage.Actions = append(copiedStage.Actions, copiedAction)
		}

		copied.Stages = append(copied.Stages, copiedStage)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return copied, nil
}

// remapTarget rewrites a "specific" action's target through the stage
// identifier mapping. Missing mappings (forward references) and
// non-"specific" transitions yield nil.
func remapTarget(action *models.Action, stageMapping map[int]int) *int {
	if action.NextStageType != models.TransitionSpecific || action.NextStageID == nil {
		return nil
	}

	mapped, ok := stageMapping[*action.NextStageID]
	if !ok {
		return nil
	}

	return &mapped
}

func (r *WorkflowRepository) workflowRow(ctx context.Context, q querier, id int) (*models.Workflow, error) {
	query := `
		SELECT workflow_master_id, wfd_name, wfd_desc, wfd_status
		FROM wfd_workflow_master
		WHERE workflow_master_id = $1
	`

	workflow, err := scanWorkflow(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrWorkflowNotFound
		}

		return nil, fmt.Errorf("failed to scan workflow: %w", err)
	}

	return workflow, nil
}

// loadStages returns a workflow's stages ordered by sequence number, ties
// broken by stage identifier, each with its actions.
func (r *WorkflowRepository) loadStages(ctx context.Context, q querier, workflowID int) ([]*models.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM wfd_stages WHERE wf_id = $1 ORDER BY seq_no, idwfd_stages`

	rows, err := q.QueryContext(ctx, query, workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stages: %w", err)
	}

	defer r.closeRows(ctx, rows)

	stages := make([]*models.Stage, 0)

	for rows.Next() {
		stage, err := scanStage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}

		stages = append(stages, stage)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stages: %w", err)
	}

	for _, stage := range stages {
		stage.Actions, err = r.loadActions(ctx, q, stage.ID)
		if err != nil {
			return nil, err
		}
	}

	return stages, nil
}

func (r *WorkflowRepository) loadActions(ctx context.Context, q querier, stageID int) ([]*models.Action, error) {
	query := `SELECT ` + actionColumns + ` FROM wfd_stages_actions WHERE stage_id = $1 ORDER BY idwfd_stages_actions`

	rows, err := q.QueryContext(ctx, query, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions: %w", err)
	}

	defer r.closeRows(ctx, rows)

	actions := make([]*models.Action, 0)

	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}

		actions = append(actions, action)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actions: %w", err)
	}

	return actions, nil
}

// stageIDSet returns the identifiers of the workflow's committed stages,
// excluding excludeStageID when non-zero.
func (r *WorkflowRepository) stageIDSet(ctx context.Context, q querier, workflowID, excludeStageID int) (map[int]struct{}, error) {
	ids, err := r.stageIDList(ctx, q, workflowID)
	if err != nil {
		return nil, err
	}

	set := make(map[int]struct{}, len(ids))

	for _, id := range ids {
		if id != excludeStageID {
			set[id] = struct{}{}
		}
	}

	return set, nil
}

func (r *WorkflowRepository) stageIDList(ctx context.Context, q querier, workflowID int) ([]int, error) {
	rows, err := q.QueryContext(ctx, `SELECT idwfd_stages FROM wfd_stages WHERE wf_id = $1`, workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stage ids: %w", err)
	}

	defer r.closeRows(ctx, rows)

	var ids []int

	for rows.Next() {
		var id int

		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan stage id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stage ids: %w", err)
	}

	return ids, nil
}

// insertStage inserts a stage row under workflowID, copying all scalar
// fields from the payload, and returns the persisted stage.
func (r *WorkflowRepository) insertStage(ctx context.Context, q querier, workflowID int, stage *models.Stage) (*models.Stage, error) {
	query := `
		INSERT INTO wfd_stages
			(wf_id, seq_no, stage_name, stage_desc, no_of_uploads, actor_type,
			 actor_count, any_all_flag, conflict_check, document_required, role_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING idwfd_stages
	`

	var id int

	err := q.QueryRowContext(ctx, query,
		workflowID,
		stage.SeqNo,
		stage.Name,
		stage.Description,
		stage.NoOfUploads,
		stage.ActorType,
		stage.ActorCount,
		stage.AnyAllFlag,
		stage.ConflictCheck,
		stage.DocumentRequired,
		stage.RoleID,
		stage.UserID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert stage: %w", err)
	}

	return stageFromPayload(workflowID, id, stage), nil
}

// insertActions inserts a stage's action set within the caller's
// transaction. Actor override columns are always written NULL by this
// validated path; next_stage_id is persisted only for "specific"
// transitions.
func (r *WorkflowRepository) insertActions(ctx context.Context, q querier, stageID int, actions []*models.Action) ([]*models.Action, error) {
	query := `
		INSERT INTO wfd_stages_actions
			(stage_id, action_name, action_desc, next_stage_type, next_stage_id, required_count, role_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, NULL)
		RETURNING idwfd_stages_actions
	`

	inserted := make([]*models.Action, 0, len(actions))

	for _, action := range actions {
		var target *int
		if action.NextStageType == models.TransitionSpecific {
			target = action.NextStageID
		}

		persisted := &models.Action{
			StageID:       stageID,
			Name:          action.Name,
			Description:   action.Description,
			NextStageType: action.NextStageType,
			NextStageID:   target,
			RequiredCount: action.RequiredCount,
		}

		err := q.QueryRowContext(ctx, query,
			persisted.StageID,
			persisted.Name,
			persisted.Description,
			persisted.NextStageType,
			persisted.NextStageID,
			persisted.RequiredCount,
		).Scan(&persisted.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert action: %w", err)
		}

		inserted = append(inserted, persisted)
	}

	return inserted, nil
}

// stageFromPayload assembles the persisted shape of a stage from its payload
// and store-assigned identifiers. Actions are filled in by the caller.
func stageFromPayload(workflowID, stageID int, stage *models.Stage) *models.Stage {
	return &models.Stage{
		ID:               stageID,
		WorkflowID:       workflowID,
		SeqNo:            stage.SeqNo,
		Name:             stage.Name,
		Description:      stage.Description,
		NoOfUploads:      stage.NoOfUploads,
		ActorType:        stage.ActorType,
		ActorCount:       stage.ActorCount,
		AnyAllFlag:       stage.AnyAllFlag,
		ConflictCheck:    stage.ConflictCheck,
		DocumentRequired: stage.DocumentRequired,
		RoleID:           stage.RoleID,
		UserID:           stage.UserID,
		Actions:          []*models.Action{},
	}
}

func scanWorkflow(scanner interface{ Scan(dest ...any) error }) (*models.Workflow, error) {
	var workflow models.Workflow

	err := scanner.Scan(
		&workflow.ID,
		&workflow.Name,
		&workflow.Description,
		&workflow.Status,
	)
	if err != nil {
		return nil, err
	}

	workflow.Stages = []*models.Stage{}

	return &workflow, nil
}

func scanStage(scanner interface{ Scan(dest ...any) error }) (*models.Stage, error) {
	var stage models.Stage

	err := scanner.Scan(
		&stage.ID,
		&stage.WorkflowID,
		&stage.SeqNo,
		&stage.Name,
		&stage.Description,
		&stage.NoOfUploads,
		&stage.ActorType,
		&stage.ActorCount,
		&stage.AnyAllFlag,
		&stage.ConflictCheck,
		&stage.DocumentRequired,
		&stage.RoleID,
		&stage.UserID,
	)
	if err != nil {
		return nil, err
	}

	stage.Actions = []*models.Action{}

	return &stage, nil
}

func scanAction(scanner interface{ Scan(dest ...any) error }) (*models.Action, error) {
	var action models.Action

	err := scanner.Scan(
		&action.ID,
		&action.StageID,
		&action.Name,
		&action.Description,
		&action.NextStageType,
		&action.NextStageID,
		&action.RequiredCount,
		&action.RoleID,
		&action.UserID,
	)
	if err != nil {
		return nil, err
	}

	return &action, nil
}

func (r *WorkflowRepository) closeRows(ctx context.Context, rows *sql.Rows) {
	err := rows.Close()
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to close rows", "error", err)
	}
}
