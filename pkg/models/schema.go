package models

// WorkflowDefinitionSchema is the JSON Schema a workflow definition document
// must satisfy. It covers the structural shape only; cross-stage rules (such
// as "specific" transition targets belonging to the same workflow) are checked
// by the graph validator.
const WorkflowDefinitionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Workflow definition",
  "type": "object",
  "required": ["wfdName", "wfdDesc", "wfdStatus"],
  "properties": {
    "workflowMasterId": {"type": "integer"},
    "wfdName": {"type": "string", "minLength": 1},
    "wfdDesc": {"type": "string", "minLength": 1},
    "wfdStatus": {"type": "string", "enum": ["active", "inactive"]},
    "stages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["seqNo", "stageName", "stageDesc", "actorType", "actorCount", "anyAllFlag"],
        "properties": {
          "idwfdStages": {"type": "integer"},
          "wfId": {"type": "integer"},
          "seqNo": {"type": "integer", "minimum": 1},
          "stageName": {"type": "string", "minLength": 1},
          "stageDesc": {"type": "string", "minLength": 1},
          "noOfUploads": {"type": "integer", "minimum": 0},
          "actorType": {"type": "string", "enum": ["role", "user"]},
          "actorCount": {"type": "integer", "minimum": 1},
          "anyAllFlag": {"type": "string", "enum": ["any", "all"]},
          "conflictCheck": {"type": "integer", "enum": [0, 1]},
          "documentRequired": {"type": "integer", "enum": [0, 1]},
          "roleId": {"type": ["integer", "null"]},
          "userId": {"type": ["integer", "null"]},
          "actions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["actionName", "nextStageType", "requiredCount"],
              "properties": {
                "idwfdStagesActions": {"type": "integer"},
                "stageId": {"type": "integer"},
                "actionName": {"type": "string", "minLength": 1},
                "actionDesc": {"type": ["string", "null"]},
                "nextStageType": {"type": "string", "enum": ["next", "prev", "complete", "specific"]},
                "nextStageId": {"type": ["integer", "null"]},
                "requiredCount": {"type": "integer", "minimum": 1},
                "roleId": {"type": ["integer", "null"]},
                "userId": {"type": ["integer", "null"]}
              }
            }
          }
        }
      }
    }
  }
}`
