// Package docs registers the OpenAPI document served at /swagger/*any.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/ai/confirm-breakdown": {
            "post": {
                "description": "Creates one medium-priority task per suggestion stored on the interaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Create tasks from breakdown suggestions",
                "parameters": [
                    {"type": "string", "description": "Caller identity", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Interaction to confirm", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.confirmReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.confirmResp"}},
                    "400": {"description": "Invalid ID or no suggestions", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Interaction not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/ai/history": {
            "get": {
                "description": "Returns the caller's interactions, newest first.",
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "List past assistant interactions",
                "parameters": [
                    {"type": "string", "description": "Caller identity", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "integer", "description": "Page size 1-50 (default: 10)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.historyResp"}},
                    "400": {"description": "Invalid pagination", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/ai/query": {
            "post": {
                "description": "Answers a free-text question using the caller's task list. Breakdown requests also return subtask suggestions.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Ask the assistant about your tasks",
                "parameters": [
                    {"type": "string", "description": "Caller identity", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Query", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.queryReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.queryResp"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "AI assistant unavailable", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "504": {"description": "AI request timed out", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/internal/v1/ai/rate-limit/{user_id}/reset": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Internal"],
                "summary": "Reset a user's rate-limit window",
                "parameters": [
                    {"type": "string", "description": "Internal key", "name": "X-Internal-Key", "in": "header", "required": true},
                    {"type": "string", "description": "User identity", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.resetResp"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API can reach its database",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.confirmReq": {
            "type": "object",
            "properties": {"interaction_id": {"type": "string"}}
        },
        "http.confirmResp": {
            "type": "object",
            "properties": {
                "created_tasks": {"type": "integer"},
                "message": {"type": "string"},
                "task_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.historyResp": {
            "type": "object",
            "properties": {
                "interactions": {"type": "array", "items": {"$ref": "#/definitions/http.interactionResp"}},
                "total": {"type": "integer"}
            }
        },
        "http.interactionResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "query": {"type": "string"},
                "response": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "http.queryReq": {
            "type": "object",
            "properties": {"query": {"type": "string"}}
        },
        "http.queryResp": {
            "type": "object",
            "properties": {
                "interaction_id": {"type": "string"},
                "model": {"type": "string"},
                "query": {"type": "string"},
                "response": {"type": "string"},
                "strategy": {"type": "string"},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/http.suggestionResp"}},
                "timestamp": {"type": "string"},
                "token_count": {"type": "integer"}
            }
        },
        "http.resetResp": {
            "type": "object",
            "properties": {"user_id": {"type": "string"}}
        },
        "http.suggestionResp": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "rationale": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "AI Task Assistant API",
	Description:      "Answers questions about a user's tasks and proposes task breakdowns using a language-model backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
