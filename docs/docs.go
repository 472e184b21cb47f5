// Package docs holds the OpenAPI description of the admin API served at /swagger/.
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Build information",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VersionInfo"}}
                }
            }
        },
        "/api/v1/guilds/{guildID}/round": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["rounds"],
                "summary": "Get the active round",
                "parameters": [
                    {"type": "string", "description": "Guild ID", "name": "guildID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RoundResponse"}},
                    "404": {"description": "No active round", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/guilds/{guildID}/round/clear": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["rounds"],
                "summary": "Force end every active round in the guild",
                "parameters": [
                    {"type": "string", "description": "Guild ID", "name": "guildID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ClearRoundsResponse"}}
                }
            }
        },
        "/api/v1/guilds/{guildID}/jokes": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["jokes"],
                "summary": "Count the guild's jokes",
                "parameters": [
                    {"type": "string", "description": "Guild ID", "name": "guildID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.JokeCountResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["jokes"],
                "summary": "Add a joke",
                "parameters": [
                    {"type": "string", "description": "Guild ID", "name": "guildID", "in": "path", "required": true},
                    {"description": "Joke", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AddJokeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Joke"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "409": {"description": "Duplicate setup", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/guilds/{guildID}/jokes/{number}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["jokes"],
                "summary": "Delete a joke by number",
                "parameters": [
                    {"type": "string", "description": "Guild ID", "name": "guildID", "in": "path", "required": true},
                    {"type": "integer", "description": "Joke number", "name": "number", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Joke not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Joke": {
            "type": "object",
            "properties": {
                "guild_id": {"type": "string"},
                "number": {"type": "integer"},
                "setup": {"type": "string"},
                "punchline": {"type": "string"},
                "category": {"type": "string"},
                "added_by": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.AddJokeRequest": {
            "type": "object",
            "required": ["punchline", "setup"],
            "properties": {
                "setup": {"type": "string", "maxLength": 1000},
                "punchline": {"type": "string", "maxLength": 1000},
                "category": {"type": "string", "maxLength": 32},
                "added_by": {"type": "string", "maxLength": 64}
            }
        },
        "handler.ClearRoundsResponse": {
            "type": "object",
            "properties": {"ended": {"type": "integer"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.JokeCountResponse": {
            "type": "object",
            "properties": {"guild_id": {"type": "string"}, "count": {"type": "integer"}}
        },
        "handler.RoundResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "guild_id": {"type": "string"},
                "channel_id": {"type": "string"},
                "started_by": {"type": "string"},
                "joke_number": {"type": "integer"},
                "prompt": {"type": "string"},
                "state": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.VersionInfo": {
            "type": "object",
            "properties": {
                "version": {"type": "string"},
                "go_version": {"type": "string"},
                "build_time": {"type": "string"},
                "git_commit": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MishkaBot Admin API",
	Description:      "Operator endpoints for the joke round bot.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
