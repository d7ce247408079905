package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/xeipuuv/gojsonschema"

	"github.com/sree04/workflow-backend/pkg/models"
	"github.com/sree04/workflow-backend/pkg/transform"
	"github.com/sree04/workflow-backend/pkg/validation"
)

func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a workflow definition file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the workflow definition JSON file",
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			data, err := os.ReadFile(command.String("file"))
			if err != nil {
				return fmt.Errorf("failed to read definition file: %w", err)
			}

			var document any
			if err := json.Unmarshal(data, &document); err != nil {
				return fmt.Errorf("failed to parse definition file: %w", err)
			}

			// Definition files exported from older tooling use snake_case
			// keys. Normalize before matching against the schema.
			document = transform.CamelizeKeys(document)

			schemaLoader := gojsonschema.NewStringLoader(models.WorkflowDefinitionSchema)
			documentLoader := gojsonschema.NewGoLoader(document)

			result, err := gojsonschema.Validate(schemaLoader, documentLoader)
			if err != nil {
				return fmt.Errorf("failed to run schema validation: %w", err)
			}

			fmt.Println("Definition Validation Results:")
			fmt.Println("==============================")

			if !result.Valid() {
				for _, desc := range result.Errors() {
					fmt.Printf("  ❌ INVALID: %s\n", desc)
				}

				return fmt.Errorf("definition file does not match the workflow schema")
			}

			normalized, err := json.Marshal(document)
			if err != nil {
				return fmt.Errorf("failed to normalize definition file: %w", err)
			}

			var workflow models.Workflow
			if err := json.Unmarshal(normalized, &workflow); err != nil {
				return fmt.Errorf("failed to decode definition file: %w", err)
			}

			if err := validation.ValidateWorkflow(&workflow); err != nil {
				fmt.Printf("  ❌ INVALID: %v\n", err)

				return fmt.Errorf("workflow failed validation")
			}

			allowedTargets := make(map[int]struct{}, len(workflow.Stages))
			for _, stage := range workflow.Stages {
				allowedTargets[stage.ID] = struct{}{}
			}

			validStages := 0
			invalidStages := 0

			for _, stage := range workflow.Stages {
				fmt.Printf("  Stage: %s (seq %d)\n", stage.Name, stage.SeqNo)

				if err := validation.ValidateStage(stage, allowedTargets, stage.ID); err != nil {
					fmt.Printf("    ❌ INVALID: %v\n", err)
					invalidStages++

					continue
				}

				fmt.Printf("    ✅ VALID\n")
				validStages++
			}

			fmt.Printf("\nSummary: %d valid, %d invalid\n", validStages, invalidStages)

			if invalidStages > 0 {
				return fmt.Errorf("definition contains %d invalid stage(s)", invalidStages)
			}

			return nil
		},
	}
}
