package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations use.
var (
	// ErrWorkflowNotFound indicates a workflow was not found by the given identifier.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrStageNotFound indicates a stage was not found within the given workflow.
	ErrStageNotFound = errors.New("stage not found")
)

// WorkflowError wraps workflow-related store errors with operation context.
type WorkflowError struct {
	Op         string // operation being performed, e.g. "AddStage"
	WorkflowID int
	StageID    int // zero when the operation is not stage-scoped
	Err        error
}

func (e *WorkflowError) Error() string {
	if e.StageID != 0 {
		return fmt.Sprintf("%s failed for stage %d in workflow %d: %v", e.Op, e.StageID, e.WorkflowID, e.Err)
	}

	return fmt.Sprintf("%s failed for workflow %d: %v", e.Op, e.WorkflowID, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

func (e *WorkflowError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewWorkflowError creates a workflow error with context.
func NewWorkflowError(op string, workflowID int, err error) *WorkflowError {
	return &WorkflowError{Op: op, WorkflowID: workflowID, Err: err}
}

// NewStageError creates a workflow error scoped to one stage.
func NewStageError(op string, workflowID, stageID int, err error) *WorkflowError {
	return &WorkflowError{Op: op, WorkflowID: workflowID, StageID: stageID, Err: err}
}

// IsWorkflowNotFound checks if an error indicates a workflow was not found.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}

// IsStageNotFound checks if an error indicates a stage was not found.
func IsStageNotFound(err error) bool {
	return errors.Is(err, ErrStageNotFound)
}

// IsNotFound checks if an error indicates any referenced entity was absent.
func IsNotFound(err error) bool {
	return IsWorkflowNotFound(err) || IsStageNotFound(err)
}
