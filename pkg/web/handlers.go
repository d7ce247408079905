package web

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/sree04/workflow-backend/pkg/models"
	"github.com/sree04/workflow-backend/pkg/services"
)

// APIHandlers exposes the workflow-definition operations over HTTP.
type APIHandlers struct {
	workflowService *services.Workflow
	validator       *validator.Validate
}

// NewAPIHandlers creates the handler set around a workflow service.
func NewAPIHandlers(workflowService *services.Workflow, validator *validator.Validate) *APIHandlers {
	return &APIHandlers{
		workflowService: workflowService,
		validator:       validator,
	}
}

// GetWorkflows returns every workflow with its full stage/action graph.
func (h *APIHandlers) GetWorkflows(c fiber.Ctx) error {
	workflows, err := h.workflowService.List(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(workflows)
}

// GetWorkflow returns one workflow's full graph.
func (h *APIHandlers) GetWorkflow(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	workflow, err := h.workflowService.Fetch(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(workflow)
}

// CreateWorkflow inserts a new workflow with an empty stage list.
func (h *APIHandlers) CreateWorkflow(c fiber.Ctx) error {
	var req WorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.workflowService.Create(c.Context(), &models.Workflow{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateWorkflow replaces a workflow's scalar fields; stages are untouched.
func (h *APIHandlers) UpdateWorkflow(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	var req WorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	updated, err := h.workflowService.Update(c.Context(), &models.Workflow{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

// DeleteWorkflow removes a workflow and all its stages and actions.
func (h *APIHandlers) DeleteWorkflow(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	if err := h.workflowService.Delete(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CopyWorkflow duplicates a workflow with its whole stage graph.
func (h *APIHandlers) CopyWorkflow(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	copied, err := h.workflowService.Copy(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(copied)
}

// AddStage inserts a stage with its action list into a workflow.
func (h *APIHandlers) AddStage(c fiber.Ctx) error {
	workflowID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	var req StageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	created, err := h.workflowService.AddStage(c.Context(), workflowID, req.ToModel())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetStage returns one stage with its actions.
func (h *APIHandlers) GetStage(c fiber.Ctx) error {
	workflowID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	stageID, err := pathID(c, "stageId")
	if err != nil {
		return badRequest(c, "Invalid stage id")
	}

	stage, err := h.workflowService.FetchStage(c.Context(), workflowID, stageID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(stage)
}

// UpdateStage updates a stage and atomically replaces its action set.
func (h *APIHandlers) UpdateStage(c fiber.Ctx) error {
	workflowID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	stageID, err := pathID(c, "stageId")
	if err != nil {
		return badRequest(c, "Invalid stage id")
	}

	var req StageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	updated, err := h.workflowService.UpdateStage(c.Context(), workflowID, stageID, req.ToModel())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

// DeleteStage removes a stage and its actions.
func (h *APIHandlers) DeleteStage(c fiber.Ctx) error {
	workflowID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid workflow id")
	}

	stageID, err := pathID(c, "stageId")
	if err != nil {
		return badRequest(c, "Invalid stage id")
	}

	if err := h.workflowService.DeleteStage(c.Context(), workflowID, stageID); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HealthCheck reports persistence health.
func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	message, healthy := h.workflowService.HealthCheck(c.Context())
	if !healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": message})
	}

	return c.JSON(fiber.Map{"status": message})
}

func pathID(c fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(c.Params(name))
}
