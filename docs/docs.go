package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "API for viewing and signing up for extracurricular activities",
        "title": "Mergington High School API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities",
                "description": "Returns every activity keyed by name with description, schedule, capacity and roster",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Map of activity name to details"
                    }
                }
            }
        },
        "/activities/{name}/signup": {
            "post": {
                "tags": ["Activities"],
                "summary": "Sign up for an activity",
                "description": "Adds the student email to the activity roster",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "name",
                        "type": "string",
                        "required": true,
                        "description": "Activity name"
                    },
                    {
                        "in": "query",
                        "name": "email",
                        "type": "string",
                        "required": true,
                        "description": "Student email",
                        "example": "student@mergington.edu"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Confirmation message"
                    },
                    "400": {
                        "description": "Student is already signed up"
                    },
                    "404": {
                        "description": "Activity not found"
                    }
                }
            }
        },
        "/activities/{name}/unregister": {
            "post": {
                "tags": ["Activities"],
                "summary": "Unregister from an activity",
                "description": "Removes the student email from the activity roster",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "name",
                        "type": "string",
                        "required": true,
                        "description": "Activity name"
                    },
                    {
                        "in": "query",
                        "name": "email",
                        "type": "string",
                        "required": true,
                        "description": "Student email",
                        "example": "student@mergington.edu"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Confirmation message"
                    },
                    "400": {
                        "description": "Student is not signed up for this activity"
                    },
                    "404": {
                        "description": "Activity not found"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Mergington High School API",
	Description:      "API for viewing and signing up for extracurricular activities",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
