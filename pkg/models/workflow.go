// Package models defines the core domain models for approval-workflow definitions.
package models

// WorkflowStatus represents the lifecycle state of a workflow definition.
type WorkflowStatus string

const (
	WorkflowStatusActive   WorkflowStatus = "active"
	WorkflowStatusInactive WorkflowStatus = "inactive"
)

// Valid reports whether the status is one of the recognized values.
func (s WorkflowStatus) Valid() bool {
	return s == WorkflowStatusActive || s == WorkflowStatusInactive
}

// ActorType identifies who is expected to act on a stage.
type ActorType string

const (
	ActorTypeRole ActorType = "role"
	ActorTypeUser ActorType = "user"
)

// Valid reports whether the actor type is one of the recognized values.
func (a ActorType) Valid() bool {
	return a == ActorTypeRole || a == ActorTypeUser
}

// DecisionMode determines how many of a stage's actors must approve.
type DecisionMode string

const (
	DecisionModeAny DecisionMode = "any" // one approval suffices
	DecisionModeAll DecisionMode = "all" // all required actors must approve
)

// Valid reports whether the decision mode is one of the recognized values.
func (d DecisionMode) Valid() bool {
	return d == DecisionModeAny || d == DecisionModeAll
}

// TransitionType determines which stage an action advances to.
type TransitionType string

const (
	TransitionNext     TransitionType = "next"
	TransitionPrev     TransitionType = "prev"
	TransitionComplete TransitionType = "complete"
	TransitionSpecific TransitionType = "specific"
)

// Valid reports whether the transition type is one of the recognized values.
func (t TransitionType) Valid() bool {
	switch t {
	case TransitionNext, TransitionPrev, TransitionComplete, TransitionSpecific:
		return true
	}

	return false
}

// Workflow is a named definition of an ordered approval process. Identifiers
// are assigned by the store; a freshly created workflow has no stages.
type Workflow struct {
	ID          int            `json:"workflowMasterId"`
	Name        string         `json:"wfdName"   validate:"required"`
	Description string         `json:"wfdDesc"   validate:"required"`
	Status      WorkflowStatus `json:"wfdStatus" validate:"required,oneof=active inactive"`
	Stages      []*Stage       `json:"stages"`
}

// Stage is one step of a workflow, with an actor requirement and a decision
// mode. A stage belongs to exactly one workflow and is never shared. Sequence
// numbers are not required to be unique within a workflow; reads order by
// sequence number and break ties by stage identifier.
type Stage struct {
	ID               int          `json:"idwfdStages"`
	WorkflowID       int          `json:"wfId"`
	SeqNo            int          `json:"seqNo"            validate:"required,min=1"`
	Name             string       `json:"stageName"        validate:"required"`
	Description      string       `json:"stageDesc"        validate:"required"`
	NoOfUploads      int          `json:"noOfUploads"      validate:"min=0"`
	ActorType        ActorType    `json:"actorType"        validate:"required,oneof=role user"`
	ActorCount       int          `json:"actorCount"       validate:"required,min=1"`
	AnyAllFlag       DecisionMode `json:"anyAllFlag"       validate:"required,oneof=any all"`
	ConflictCheck    int          `json:"conflictCheck"    validate:"min=0,max=1"`
	DocumentRequired int          `json:"documentRequired" validate:"min=0,max=1"`
	RoleID           *int         `json:"roleId"`
	UserID           *int         `json:"userId"`
	Actions          []*Action    `json:"actions"`
}

// Action is an outcome attached to a stage that determines the next stage via
// its transition directive. NextStageID is populated only for "specific"
// transitions. RoleID and UserID exist in the storage shape but are never
// populated by the validated write paths.
type Action struct {
	ID            int            `json:"idwfdStagesActions"`
	StageID       int            `json:"stageId"`
	Name          string         `json:"actionName"    validate:"required"`
	Description   *string        `json:"actionDesc"`
	NextStageType TransitionType `json:"nextStageType" validate:"required,oneof=next prev complete specific"`
	NextStageID   *int           `json:"nextStageId"`
	RequiredCount int            `json:"requiredCount" validate:"required,min=1"`
	RoleID        *int           `json:"roleId"`
	UserID        *int           `json:"userId"`
}
