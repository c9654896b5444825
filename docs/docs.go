// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/bendesk/main.go -o docs
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in with username and password",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/tickets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "List tickets",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "priority", "in": "query"},
                    {"type": "string", "name": "assigned_to", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "post": {
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["tickets"],
                "summary": "Open a ticket",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/ativos/centros-de-custo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["assets"],
                "summary": "List cost centers",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/estoque": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stock"],
                "summary": "Stock overview",
                "description": "Item totals per category, movement counts and the latest movements",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stock"],
                "summary": "Register a stock item",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.CreateItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.CreateItemRequest": {
            "type": "object",
            "required": ["nome"],
            "properties": {
                "categoria": {"type": "string"},
                "nome": {"type": "string"},
                "nova_categoria": {"type": "string"},
                "observacoes": {"type": "string"},
                "quantidade": {"type": "number"},
                "unidade": {"type": "string"}
            }
        },
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/utils.ErrorInfo"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "utils.ErrorInfo": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "message": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bendesk API",
	Description:      "Internal IT helpdesk: tickets, assets and stock.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
