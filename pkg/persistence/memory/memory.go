// Package memory provides an in-memory persistence implementation with the
// same semantics as the SQL backend: store-assigned integer identifiers,
// validation before any mutation, atomic replace-all action updates, and
// cascade deletes. It backs service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sree04/workflow-backend/pkg/models"
	"github.com/sree04/workflow-backend/pkg/persistence"
	"github.com/sree04/workflow-backend/pkg/validation"
)

const copyNameSuffix = " (Copy)"

// Persistence implements persistence.Persistence backed by process memory.
type Persistence struct {
	repo *WorkflowRepository
}

// NewPersistence creates an empty in-memory persistence layer.
func NewPersistence() *Persistence {
	return &Persistence{repo: &WorkflowRepository{
		workflows: make(map[int]*models.Workflow),
		stages:    make(map[int]*models.Stage),
		actions:   make(map[int][]*models.Action),
	}}
}

func (p *Persistence) WorkflowRepository() persistence.WorkflowRepository {
	return p.repo
}

func (p *Persistence) HealthCheck(_ context.Context) error {
	return nil
}

func (p *Persistence) Close(_ context.Context) error {
	return nil
}

// WorkflowRepository is the in-memory workflow repository. A single mutex
// stands in for the store's transaction isolation: each operation holds it
// for its full duration, and mutations are applied only after every check
// has passed, so a failed operation leaves no partial write.
type WorkflowRepository struct {
	mu sync.Mutex

	workflows map[int]*models.Workflow // scalar fields only; Stages assembled on read
	stages    map[int]*models.Stage    // scalar fields only; Actions assembled on read
	actions   map[int][]*models.Action // keyed by stage id

	nextWorkflowID int
	nextStageID    int
	nextActionID   int
}

func (r *WorkflowRepository) Workflows(_ context.Context) ([]*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.workflows))
	for id := range r.workflows {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	workflows := make([]*models.Workflow, 0, len(ids))
	for _, id := range ids {
		workflows = append(workflows, r.assembleWorkflow(id))
	}

	return workflows, nil
}

func (r *WorkflowRepository) WorkflowByID(_ context.Context, id int) (*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workflows[id]; !ok {
		return nil, persistence.ErrWorkflowNotFound
	}

	return r.assembleWorkflow(id), nil
}

func (r *WorkflowRepository) CreateWorkflow(_ context.Context, workflow *models.Workflow) (*models.Workflow, error) {
	if err := validation.ValidateWorkflow(workflow); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextWorkflowID++

	created := &models.Workflow{
		ID:          r.nextWorkflowID,
		Name:        workflow.Name,
		Description: workflow.Description,
		Status:      workflow.Status,
	}
	r.workflows[created.ID] = created

	return r.assembleWorkflow(created.ID), nil
}

func (r *WorkflowRepository) UpdateWorkflow(_ context.Context, workflow *models.Workflow) (*models.Workflow, error) {
	if err := validation.ValidateWorkflow(workflow); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workflows[workflow.ID]
	if !ok {
		return nil, persistence.ErrWorkflowNotFound
	}

	existing.Name = workflow.Name
	existing.Description = workflow.Description
	existing.Status = workflow.Status

	return &models.Workflow{
		ID:          existing.ID,
		Name:        existing.Name,
		Description: existing.Description,
		Status:      existing.Status,
		Stages:      []*models.Stage{},
	}, nil
}

func (r *WorkflowRepository) DeleteWorkflow(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workflows[id]; !ok {
		return persistence.ErrWorkflowNotFound
	}

	for _, stage := range r.stagesOf(id) {
		delete(r.actions, stage.ID)
		delete(r.stages, stage.ID)
	}

	delete(r.workflows, id)

	return nil
}

func (r *WorkflowRepository) AddStage(_ context.Context, workflowID int, stage *models.Stage) (*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workflows[workflowID]; !ok {
		return nil, persistence.ErrWorkflowNotFound
	}

	if err := validation.ValidateStage(stage, r.stageIDSet(workflowID, 0), 0); err != nil {
		return nil, err
	}

	r.nextStageID++
	stageID := r.nextStageID

	r.stages[stageID] = copyStageScalars(workflowID, stageID, stage)
	r.actions[stageID] = r.buildActions(stageID, stage.Actions)

	return r.assembleStage(stageID), nil
}

func (r *WorkflowRepository) UpdateStage(_ context.Context, workflowID, stageID int, stage *models.Stage) (*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := validation.ValidateStage(stage, r.stageIDSet(workflowID, stageID), stageID); err != nil {
		return nil, err
	}

	existing, ok := r.stages[stageID]
	if !ok || existing.WorkflowID != workflowID {
		return nil, persistence.ErrStageNotFound
	}

	r.stages[stageID] = copyStageScalars(workflowID, stageID, stage)
	r.actions[stageID] = r.buildActions(stageID, stage.Actions)

	return r.assembleStage(stageID), nil
}

func (r *WorkflowRepository) DeleteStage(_ context.Context, workflowID, stageID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.stages[stageID]
	if !ok || existing.WorkflowID != workflowID {
		return persistence.ErrStageNotFound
	}

	delete(r.actions, stageID)
	delete(r.stages, stageID)

	return nil
}

func (r *WorkflowRepository) StageByID(_ context.Context, workflowID, stageID int) (*models.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.stages[stageID]
	if !ok || existing.WorkflowID != workflowID {
		return nil, persistence.ErrStageNotFound
	}

	return r.assembleStage(stageID), nil
}

func (r *WorkflowRepository) StageActions(_ context.Context, stageID int) ([]*models.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.copyActions(stageID), nil
}

func (r *WorkflowRepository) CopyWorkflow(_ context.Context, id int) (*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	source, ok := r.workflows[id]
	if !ok {
		return nil, persistence.ErrWorkflowNotFound
	}

	r.nextWorkflowID++

	copied := &models.Workflow{
		ID:          r.nextWorkflowID,
		Name:        source.Name + copyNameSuffix,
		Description: source.Description,
		Status:      source.Status,
	}
	r.workflows[copied.ID] = copied

	// Stages are copied in sequence order, each followed by its actions, so
	// the mapping only covers stages copied so far: forward references
	// degrade to null, matching the SQL cloner.
	sourceStages := r.stagesOf(id)
	stageMapping := make(map[int]int, len(sourceStages))

	for _, sourceStage := range sourceStages {
		r.nextStageID++
		newStageID := r.nextStageID
		stageMapping[sourceStage.ID] = newStageID
		r.stages[newStageID] = copyStageScalars(copied.ID, newStageID, sourceStage)

		copiedActions := make([]*models.Action, 0, len(r.actions[sourceStage.ID]))

		for _, action := range r.actions[sourceStage.ID] {
			var target *int

			if action.NextStageType == models.TransitionSpecific && action.NextStageID != nil {
				if mapped, ok := stageMapping[*action.NextStageID]; ok {
					value := mapped
					target = &value
				}
			}

			r.nextActionID++
			copiedActions = append(copiedActions, &models.Action{
				ID:            r.nextActionID,
				StageID:       newStageID,
				Name:          action.Name,
				Description:   action.Description,
				NextStageType: action.NextStageType,
				NextStageID:   target,
				RequiredCount: action.RequiredCount,
				RoleID:        action.RoleID,
				UserID:        action.UserID,
			})
		}

		r.actions[newStageID] = copiedActions
	}

	return r.assembleWorkflow(copied.ID), nil
}

func (r *WorkflowRepository) stagesOf(workflowID int) []*models.Stage {
	var stages []*models.Stage

	for _, stage := range r.stages {
		if stage.WorkflowID == workflowID {
			stages = append(stages, stage)
		}
	}

	sort.Slice(stages, func(i, j int) bool {
		if stages[i].SeqNo != stages[j].SeqNo {
			return stages[i].SeqNo < stages[j].SeqNo
		}

		return stages[i].ID < stages[j].ID
	})

	return stages
}

func (r *WorkflowRepository) stageIDSet(workflowID, excludeStageID int) map[int]struct{} {
	set := make(map[int]struct{})

	for id, stage := range r.stages {
		if stage.WorkflowID == workflowID && id != excludeStageID {
			set[id] = struct{}{}
		}
	}

	return set
}

func (r *WorkflowRepository) buildActions(stageID int, actions []*models.Action) []*models.Action {
	built := make([]*models.Action, 0, len(actions))

	for _, action := range actions {
		var target *int
		if action.NextStageType == models.TransitionSpecific && action.NextStageID != nil {
			value := *action.NextStageID
			target = &value
		}

		r.nextActionID++
		built = append(built, &models.Action{
			ID:            r.nextActionID,
			StageID:       stageID,
			Name:          action.Name,
			Description:   action.Description,
			NextStageType: action.NextStageType,
			NextStageID:   target,
			RequiredCount: action.RequiredCount,
		})
	}

	return built
}

func (r *WorkflowRepository) assembleWorkflow(id int) *models.Workflow {
	stored := r.workflows[id]

	workflow := &models.Workflow{
		ID:          stored.ID,
		Name:        stored.Name,
		Description: stored.Description,
		Status:      stored.Status,
		Stages:      []*models.Stage{},
	}

	for _, stage := range r.stagesOf(id) {
		workflow.Stages = append(workflow.Stages, r.assembleStage(stage.ID))
	}

	return workflow
}

func (r *WorkflowRepository) assembleStage(stageID int) *models.Stage {
	stored := r.stages[stageID]

	stage := copyStageScalars(stored.WorkflowID, stored.ID, stored)
	stage.Actions = r.copyActions(stageID)

	return stage
}

func (r *WorkflowRepository) copyActions(stageID int) []*models.Action {
	stored := r.actions[stageID]
	actions := make([]*models.Action, 0, len(stored))

	for _, action := range stored {
		copied := *action
		copied.NextStageID = copyIntPtr(action.NextStageID)
		copied.RoleID = copyIntPtr(action.RoleID)
		copied.UserID = copyIntPtr(action.UserID)
		copied.Description = copyStringPtr(action.Description)
		actions = append(actions, &copied)
	}

	return actions
}

func copyStageScalars(workflowID, stageID int, stage *models.Stage) *models.Stage {
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
		RoleID:           copyIntPtr(stage.RoleID),
		UserID:           copyIntPtr(stage.UserID),
		Actions:          []*models.Action{},
	}
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}

	value := *v

	return &value
}

func copyStringPtr(v *string) *string {
	if v == nil {
		return nil
	}

	value := *v

	return &value
}
