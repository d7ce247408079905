// Package validation implements the structural rule checks a stage payload
// must pass before any mutation is committed. Rules are evaluated in a fixed
// order and the first violation wins; each violation names the offending
// field and the rule it broke so the boundary layer can classify it.
package validation

import (
	"fmt"

	"github.com/sree04/workflow-backend/pkg/models"
)

// Rule identifiers carried by validation errors.
const (
	RuleRequired       = "required"
	RulePositive       = "positive"
	RuleNonNegative    = "non_negative"
	RuleEnum           = "enum"
	RuleFlag           = "flag"
	RuleRange          = "range"
	RuleTargetConflict = "target_conflict"
)

// Error is a single violated rule. Rule RuleTargetConflict marks a "specific"
// transition whose target stage does not belong to the workflow; callers
// surface it as a conflict rather than a plain validation failure.
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Conflict reports whether the violation is a cross-stage target conflict.
func (e *Error) Conflict() bool {
	return e.Rule == RuleTargetConflict
}

func newError(field, rule, format string, args ...any) *Error {
	return &Error{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidateWorkflow checks the scalar fields of a workflow payload.
func ValidateWorkflow(workflow *models.Workflow) error {
	if workflow.Name == "" {
		return newError("wfdName", RuleRequired, "wfdName is required and must be a non-empty string")
	}

	if workflow.Description == "" {
		return newError("wfdDesc", RuleRequired, "wfdDesc is required and must be a non-empty string")
	}

	if !workflow.Status.Valid() {
		return newError("wfdStatus", RuleEnum,
			"invalid wfdStatus value: %s, expected one of: active, inactive", workflow.Status)
	}

	return nil
}

// ValidateStage checks a candidate stage payload, including its action list,
// against the structural rules. allowedTargets is the set of stage
// identifiers already committed in the target workflow, excluding the stage
// under edit; selfID re-admits the edited stage as a legal "specific" target
// (a stage may loop to itself). Pass selfID 0 for inserts, where the stage
// has no identifier yet.
func ValidateStage(stage *models.Stage, allowedTargets map[int]struct{}, selfID int) error {
	if stage.Name == "" {
		return newError("stageName", RuleRequired, "stageName is required and must be a non-empty string")
	}

	if stage.Description == "" {
		return newError("stageDesc", RuleRequired, "stageDesc is required and must be a non-empty string")
	}

	if stage.SeqNo < 1 {
		return newError("seqNo", RulePositive, "seqNo must be a positive integer")
	}

	if stage.NoOfUploads < 0 {
		return newError("noOfUploads", RuleNonNegative, "noOfUploads must be a non-negative integer")
	}

	if !stage.ActorType.Valid() {
		return newError("actorType", RuleEnum, `actorType must be either "role" or "user"`)
	}

	if stage.ActorType == models.ActorTypeRole && stage.RoleID == nil {
		return newError("roleId", RuleRequired, "roleId is required when actorType is role")
	}

	if stage.ActorType == models.ActorTypeUser && stage.UserID == nil {
		return newError("userId", RuleRequired, "userId is required when actorType is user")
	}

	if stage.ActorCount < 1 {
		return newError("actorCount", RulePositive, "actorCount must be a positive integer")
	}

	if !stage.AnyAllFlag.Valid() {
		return newError("anyAllFlag", RuleEnum, `anyAllFlag must be either "any" or "all"`)
	}

	if stage.ConflictCheck != 0 && stage.ConflictCheck != 1 {
		return newError("conflictCheck", RuleFlag, "conflictCheck must be 0 or 1")
	}

	if stage.DocumentRequired != 0 && stage.DocumentRequired != 1 {
		return newError("documentRequired", RuleFlag, "documentRequired must be 0 or 1")
	}

	for _, action := range stage.Actions {
		if err := validateAction(action, stage.ActorCount, allowedTargets, selfID); err != nil {
			return err
		}
	}

	return nil
}

func validateAction(action *models.Action, actorCount int, allowedTargets map[int]struct{}, selfID int) error {
	if action.Name == "" {
		return newError("actionName", RuleRequired, "actionName is required and must be a non-empty string for all actions")
	}

	if !action.NextStageType.Valid() {
		return newError("nextStageType", RuleEnum, "nextStageType must be one of: next, prev, complete, specific")
	}

	if action.NextStageType == models.TransitionSpecific {
		if action.NextStageID == nil {
			return newError("nextStageId", RuleRequired, `nextStageId is required when nextStageType is "specific"`)
		}

		target := *action.NextStageID
		_, ok := allowedTargets[target]

		if !ok && !(selfID != 0 && target == selfID) {
			return newError("nextStageId", RuleTargetConflict,
				"nextStageId %d does not correspond to an existing stage in this workflow", target)
		}
	}

	if action.RequiredCount < 1 || action.RequiredCount > actorCount {
		return newError("requiredCount", RuleRange,
			"requiredCount must be an integer between 1 and %d", actorCount)
	}

	return nil
}
