// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/alerts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "List alerts",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of id, transactionId or userId", "name": "search", "in": "query"},
                    {"type": "string", "description": "Risk filter: all, high, medium, low", "name": "risk", "in": "query"},
                    {"type": "string", "description": "Filter by status", "name": "status", "in": "query"},
                    {"type": "string", "description": "Filter by severity", "name": "severity", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Matching alerts", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/alerts/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Count alerts by severity and status",
                "parameters": [
                    {"type": "string", "description": "Severity", "name": "severity", "in": "query", "required": true},
                    {"type": "string", "description": "Status", "name": "status", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Count", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Invalid severity or status", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/alerts/partition": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Partition alerts by status",
                "responses": {
                    "200": {"description": "Active, under review and resolved alerts", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/alerts/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Get alert summary",
                "responses": {
                    "200": {"description": "Alert counts", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/alerts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Get alert by ID",
                "parameters": [
                    {"type": "string", "description": "Alert ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Alert details", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Alert not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/alerts/{id}/actions": {
            "post": {
                "description": "block and review move an active alert to under_review; resolve (or approve) moves it to resolved",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Alerts"],
                "summary": "Act on an alert",
                "parameters": [
                    {"type": "string", "description": "Alert ID", "name": "id", "in": "path", "required": true},
                    {"description": "Action", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated alert", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Unknown action", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Alert not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "409": {"description": "Alert is not active", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of id, sender or receiver", "name": "search", "in": "query"},
                    {"type": "string", "description": "Risk filter: all, high, medium, low", "name": "risk", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Matching transactions", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/transactions/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transaction summary",
                "responses": {
                    "200": {"description": "Transaction figures", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Get transaction by ID",
                "parameters": [
                    {"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Transaction details", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of email, name or id", "name": "search", "in": "query"},
                    {"type": "string", "description": "Risk filter: all, high, medium, low", "name": "risk", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Matching users", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/users/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get user summary",
                "responses": {
                    "200": {"description": "User counts", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get user by ID",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "User profile", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/users/{id}/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Get user transaction history",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "History samples", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Chart datasets plus live alert, transaction and user summaries",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get dashboard overview",
                "responses": {
                    "200": {"description": "Overview", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ActionRequest": {
            "type": "object",
            "required": ["action"],
            "properties": {
                "action": {"type": "string", "enum": ["block", "review", "resolve", "approve"]}
            }
        },
        "utils.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/utils.ErrorDetail"},
                "success": {"type": "boolean"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "FraudGuard API",
	Description:      "Fraud alert triage, transaction and user risk monitoring.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
