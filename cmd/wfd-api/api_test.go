package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sree04/workflow-backend/pkg/models"
	"github.com/sree04/workflow-backend/pkg/persistence/memory"
)

func setupTestApp() *fiber.App {
	api := NewAPI(slog.Default(), memory.NewPersistence())

	return api.App()
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func createTestWorkflow(t *testing.T, app *fiber.App) models.Workflow {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/workflows", map[string]any{
		"wfdName":   "Leave Approval",
		"wfdDesc":   "Employee leave requests",
		"wfdStatus": "active",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var workflow models.Workflow
	decodeBody(t, resp, &workflow)

	return workflow
}

func stageBody(seqNo int, name string, actions ...map[string]any) map[string]any {
	if actions == nil {
		actions = []map[string]any{}
	}

	return map[string]any{
		"seqNo":      seqNo,
		"stageName":  name,
		"stageDesc":  name + " step",
		"actorType":  "role",
		"roleId":     3,
		"actorCount": 2,
		"anyAllFlag": "any",
		"actions":    actions,
	}
}

func TestAPI_RootEndpoint(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Workflow Definition API", string(body))
}

func TestAPI_HealthEndpoints(t *testing.T) {
	app := setupTestApp()

	for _, path := range []string{"/livez", "/readyz", "/health"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "path %s", path)

		require.NoError(t, resp.Body.Close())
	}
}

func TestAPI_CreateWorkflow(t *testing.T) {
	app := setupTestApp()

	workflow := createTestWorkflow(t, app)

	assert.NotZero(t, workflow.ID)
	assert.Equal(t, "Leave Approval", workflow.Name)
	assert.Equal(t, models.WorkflowStatusActive, workflow.Status)
	assert.Empty(t, workflow.Stages)
}

func TestAPI_CreateWorkflow_InvalidBody(t *testing.T) {
	app := setupTestApp()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"wfdDesc": "x", "wfdStatus": "active"}},
		{"missing description", map[string]any{"wfdName": "x", "wfdStatus": "active"}},
		{"unknown status", map[string]any{"wfdName": "x", "wfdDesc": "y", "wfdStatus": "archived"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/workflows", tt.body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			require.NoError(t, resp.Body.Close())
		})
	}
}

func TestAPI_GetWorkflow(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/workflows/%d", created.ID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Workflow
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestAPI_GetWorkflow_NotFound(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workflows/99", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, resp.Body.Close())
}

func TestAPI_GetWorkflow_InvalidID(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workflows/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.NoError(t, resp.Body.Close())
}

func TestAPI_UpdateWorkflow(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	req := jsonRequest(t, http.MethodPut, fmt.Sprintf("/workflows/%d", created.ID), map[string]any{
		"wfdName":   "Leave Approval v2",
		"wfdDesc":   "Employee leave requests, revised",
		"wfdStatus": "inactive",
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Workflow
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Leave Approval v2", updated.Name)
	assert.Equal(t, models.WorkflowStatusInactive, updated.Status)
}

func TestAPI_DeleteWorkflow(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/workflows/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/workflows/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestAPI_AddStage(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	req := jsonRequest(t, http.MethodPost, fmt.Sprintf("/workflows/%d/stages", created.ID),
		stageBody(1, "Manager Approval", map[string]any{
			"actionName":    "Approve",
			"nextStageType": "next",
			"requiredCount": 1,
		}))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stage models.Stage
	decodeBody(t, resp, &stage)
	assert.NotZero(t, stage.ID)
	assert.Equal(t, created.ID, stage.WorkflowID)
	require.Len(t, stage.Actions, 1)
	assert.Equal(t, "Approve", stage.Actions[0].Name)
}

func TestAPI_AddStage_ValidationFailure(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	body := stageBody(0, "Manager Approval")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, fmt.Sprintf("/workflows/%d/stages", created.ID), body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.NoError(t, resp.Body.Close())
}

func TestAPI_AddStage_ForeignTargetConflict(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	req := jsonRequest(t, http.MethodPost, fmt.Sprintf("/workflows/%d/stages", created.ID),
		stageBody(1, "Manager Approval", map[string]any{
			"actionName":    "Escalate",
			"nextStageType": "specific",
			"nextStageId":   99,
			"requiredCount": 1,
		}))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	require.NoError(t, resp.Body.Close())
}

func TestAPI_AddStage_WorkflowNotFound(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/workflows/99/stages", stageBody(1, "Manager Approval")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, resp.Body.Close())
}

func TestAPI_StageLifecycle(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, fmt.Sprintf("/workflows/%d/stages", created.ID),
		stageBody(1, "Manager Approval")))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stage models.Stage
	decodeBody(t, resp, &stage)

	stagePath := fmt.Sprintf("/workflows/%d/stages/%d", created.ID, stage.ID)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, stagePath, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Stage
	decodeBody(t, resp, &fetched)
	assert.Equal(t, stage.ID, fetched.ID)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, stagePath,
		stageBody(2, "Manager Approval", map[string]any{
			"actionName":    "Approve",
			"nextStageType": "complete",
			"requiredCount": 1,
		})))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Stage
	decodeBody(t, resp, &updated)
	assert.Equal(t, 2, updated.SeqNo)
	require.Len(t, updated.Actions, 1)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, stagePath, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, stagePath, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestAPI_CopyWorkflow(t *testing.T) {
	app := setupTestApp()
	created := createTestWorkflow(t, app)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, fmt.Sprintf("/workflows/%d/stages", created.ID),
		stageBody(1, "Manager Approval", map[string]any{
			"actionName":    "Approve",
			"nextStageType": "next",
			"requiredCount": 1,
		})))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, fmt.Sprintf("/workflows/%d/copy", created.ID), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var copied models.Workflow
	decodeBody(t, resp, &copied)
	assert.NotEqual(t, created.ID, copied.ID)
	assert.Equal(t, "Leave Approval (Copy)", copied.Name)
	require.Len(t, copied.Stages, 1)
	assert.Len(t, copied.Stages[0].Actions, 1)
}

func TestAPI_CopyWorkflow_NotFound(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/workflows/99/copy", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, resp.Body.Close())
}

func TestAPI_ListWorkflows(t *testing.T) {
	app := setupTestApp()
	createTestWorkflow(t, app)
	createTestWorkflow(t, app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/workflows", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var workflows []models.Workflow
	decodeBody(t, resp, &workflows)
	assert.Len(t, workflows, 2)
}
