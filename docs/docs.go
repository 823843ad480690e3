// Package docs registers the OpenAPI description served under /swagger.
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
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate and receive a session token",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["users"], "summary": "Create a user", "responses": {"201": {"description": "Created"}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get a user", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["users"], "summary": "Update a user", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["users"], "summary": "Delete a user", "responses": {"204": {"description": "No Content"}}}
        },
        "/catways": {
            "get": {"tags": ["catways"], "summary": "List catways", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["catways"], "summary": "Create a catway", "responses": {"201": {"description": "Created"}}}
        },
        "/catways/{id}": {
            "get": {"tags": ["catways"], "summary": "Get a catway", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["catways"], "summary": "Update a catway", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["catways"], "summary": "Delete a catway", "responses": {"204": {"description": "No Content"}}}
        },
        "/catways/{id}/reservations": {
            "get": {"tags": ["reservations"], "summary": "List reservations for a catway", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["reservations"], "summary": "Create a reservation", "responses": {"201": {"description": "Created"}}}
        },
        "/catways/{id}/reservations/{idReservation}": {
            "get": {"tags": ["reservations"], "summary": "Get a reservation", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["reservations"], "summary": "Delete a reservation", "responses": {"204": {"description": "No Content"}}}
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "authToken",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Port Russell Marina API",
	Description:      "Marina management backend: users, catways and reservations behind cookie-based token authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
