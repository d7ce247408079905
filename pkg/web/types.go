// Package web provides the HTTP handlers and request/response types for the
// workflow-definition API.
package web

import "github.com/sree04/workflow-backend/pkg/models"

// WorkflowRequest is the body for creating or updating a workflow's scalar
// fields.
type WorkflowRequest struct {
	Name        string                `json:"wfdName"   validate:"required"`
	Description string                `json:"wfdDesc"   validate:"required"`
	Status      models.WorkflowStatus `json:"wfdStatus" validate:"required,oneof=active inactive"`
}

// StageRequest is the body for adding or updating a stage. The full action
// list travels with the stage; on update it replaces the persisted set.
type StageRequest struct {
	SeqNo            int                  `json:"seqNo"`
	Name             string               `json:"stageName"`
	Description      string               `json:"stageDesc"`
	NoOfUploads      int                  `json:"noOfUploads"`
	ActorType        models.ActorType     `json:"actorType"`
	ActorCount       int                  `json:"actorCount"`
	AnyAllFlag       models.DecisionMode  `json:"anyAllFlag"`
	ConflictCheck    int                  `json:"conflictCheck"`
	DocumentRequired int                  `json:"documentRequired"`
	RoleID           *int                 `json:"roleId"`
	UserID           *int                 `json:"userId"`
	Actions          []StageActionRequest `json:"actions"`
}

// StageActionRequest is one action inside a StageRequest.
type StageActionRequest struct {
	Name          string                `json:"actionName"`
	Description   *string               `json:"actionDesc"`
	NextStageType models.TransitionType `json:"nextStageType"`
	NextStageID   *int                  `json:"nextStageId"`
	RequiredCount int                   `json:"requiredCount"`
}

// ToModel converts the request into the domain shape the service consumes.
func (r *StageRequest) ToModel() *models.Stage {
	stage := &models.Stage{
		SeqNo:            r.SeqNo,
		Name:             r.Name,
		Description:      r.Description,
		NoOfUploads:      r.NoOfUploads,
		ActorType:        r.ActorType,
		ActorCount:       r.ActorCount,
		AnyAllFlag:       r.AnyAllFlag,
		ConflictCheck:    r.ConflictCheck,
		DocumentRequired: r.DocumentRequired,
		RoleID:           r.RoleID,
		UserID:           r.UserID,
		Actions:          make([]*models.Action, 0, len(r.Actions)),
	}

	for _, action := range r.Actions {
		stage.Actions = append(stage.Actions, &models.Action{
			Name:          action.Name,
			Description:   action.Description,
			NextStageType: action.NextStageType,
			NextStageID:   action.NextStageID,
			RequiredCount: action.RequiredCount,
		})
	}

	return stage
}
