// Package docs registers the console's OpenAPI description with swag so
// echo-swagger can serve it under /swagger/. Regenerate with
// `swag init -g cmd/console/main.go` after changing handler annotations.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign in",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Create an account",
                "parameters": [{"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}
            }
        },
        "/session/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Refresh the session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DashboardView"}},
                    "302": {"description": "redirect to /login"}
                }
            }
        },
        "/dashboard/restaurants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Restaurant management",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantsView"}},
                    "302": {"description": "redirect to /login or /dashboard"}
                }
            }
        },
        "/dashboard/restaurants/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Reload the list",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantsView"}}}
            }
        },
        "/dashboard/restaurants/new": {
            "post": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Open the create form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantsView"}}}
            }
        },
        "/dashboard/restaurants/cancel": {
            "post": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Close the form",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantsView"}}}
            }
        },
        "/dashboard/restaurants/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Save the form",
                "parameters": [{"description": "Form buffer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.RestaurantForm"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantsView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/dashboard/restaurants/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Restaurant detail",
                "parameters": [{"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Restaurant"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Delete a restaurant",
                "parameters": [
                    {"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Operator confirmation", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantsView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "428": {"description": "Precondition Required", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/dashboard/restaurants/{id}/edit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Open the edit form",
                "parameters": [{"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.RestaurantsView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "state": {}}
        },
        "domain.Restaurant": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "image_url": {"type": "string"},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.RestaurantForm": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "image_url": {"type": "string"},
                "is_active": {"type": "boolean"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "admin", "superadmin"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 6}, "name": {"type": "string"}}
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/domain.User"}, "redirect": {"type": "string"}}
        },
        "service.NavLink": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "href": {"type": "string"}, "active": {"type": "boolean"}}
        },
        "service.WelcomePanel": {
            "type": "object",
            "properties": {
                "variant": {"type": "string"},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "action": {"$ref": "#/definitions/service.NavLink"}
            }
        },
        "service.DashboardView": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/domain.User"},
                "display_name": {"type": "string"},
                "nav_links": {"type": "array", "items": {"$ref": "#/definitions/service.NavLink"}},
                "welcome": {"$ref": "#/definitions/service.WelcomePanel"}
            }
        },
        "service.RestaurantsView": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/domain.User"},
                "nav_links": {"type": "array", "items": {"$ref": "#/definitions/service.NavLink"}},
                "state": {
                    "type": "object",
                    "properties": {
                        "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Restaurant"}},
                        "modal": {
                            "type": "object",
                            "properties": {
                                "open": {"type": "boolean"},
                                "mode": {"type": "string", "enum": ["create", "edit"]},
                                "editing_id": {"type": "integer"},
                                "form": {"$ref": "#/definitions/domain.RestaurantForm"}
                            }
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Restaurant Console",
	Description:      "Operator console for restaurant administration. Holds the session client-side and drives the backend REST API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
