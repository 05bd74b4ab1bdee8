// Package docs registers the OpenAPI document served at /swagger-doc.json.
// Kept by hand; update alongside the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Register a new account",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/dto.AccountRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/dto.AccountRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "List all messages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListMessagesResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Create a message",
                "parameters": [
                    {"description": "Message body", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/dto.CreateMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/messages/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Get a message by ID",
                "parameters": [
                    {"type": "integer", "description": "Message ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "message, or empty body when absent",
                            "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Update a message's text",
                "parameters": [
                    {"type": "integer", "description": "Message ID", "name": "id", "in": "path", "required": true},
                    {"description": "New text", "name": "body", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/dto.UpdateMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "rows affected", "schema": {"type": "integer"}},
                    "400": {"description": "Bad Request"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Delete a message by ID",
                "parameters": [
                    {"type": "integer", "description": "Message ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "1 when deleted, empty body otherwise", "schema": {"type": "integer"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/accounts/{id}/messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "List messages posted by an account",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListMessagesResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    },
    "definitions": {
        "dto.AccountRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.CreateMessageRequest": {
            "type": "object",
            "properties": {
                "message_text": {"type": "string"},
                "posted_by": {"type": "integer"},
                "posted_at": {"type": "string"}
            }
        },
        "dto.UpdateMessageRequest": {
            "type": "object",
            "properties": {
                "message_text": {"type": "string"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message_text": {"type": "string"},
                "posted_by": {"type": "integer"},
                "posted_at": {"type": "string"}
            }
        },
        "dto.ListMessagesResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.MessageResponse"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Chirper API",
	Description:      "Accounts and short text messages with deterministic outcome reporting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
