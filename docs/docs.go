// Package docs provides Swagger documentation for the tutor course API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tutor Course API",
        "description": "Course catalog service for tutors.\n\nCourses are owned by a tutor and identified by a per-tutor sequential id. The health endpoint reports liveness together with a running visit counter.",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/ahyz0569/go-tutor-backend"
        },
        "license": {
            "name": "MIT"
        },
        "version": "1.0.0"
    },
    "host": "localhost:3000",
    "basePath": "/",
    "schemes": ["http", "https"],
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health check",
                "description": "Returns the configured greeting with the number of prior health checks",
                "operationId": "health",
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"type": "string", "example": "I'm good. You've already asked me 2 times"}
                    }
                }
            }
        },
        "/courses/": {
            "post": {
                "tags": ["Courses"],
                "summary": "Create a new course",
                "description": "Adds a course for a tutor. The course id is assigned per tutor and posted_time is set by the server.",
                "operationId": "createCourse",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/NewCourseRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Course created",
                        "schema": {"$ref": "#/definitions/Course"}
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {"$ref": "#/definitions/ValidationBody"}
                    },
                    "500": {
                        "description": "Database or internal error",
                        "schema": {"$ref": "#/definitions/ErrorBody"}
                    }
                }
            }
        },
        "/courses/{tutor_id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List a tutor's courses",
                "description": "Returns every course of the tutor in insertion order. A tutor without courses yields an empty array.",
                "operationId": "listCourses",
                "parameters": [
                    {
                        "name": "tutor_id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 100,
                        "description": "Tutor id"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/Course"}
                        }
                    },
                    "400": {
                        "description": "Tutor id out of range",
                        "schema": {"$ref": "#/definitions/ValidationBody"}
                    },
                    "500": {
                        "description": "Database or internal error",
                        "schema": {"$ref": "#/definitions/ErrorBody"}
                    }
                }
            }
        },
        "/courses/{tutor_id}/{course_id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get one course",
                "description": "Returns the unique course matching both ids",
                "operationId": "getCourse",
                "parameters": [
                    {
                        "name": "tutor_id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 100,
                        "description": "Tutor id"
                    },
                    {
                        "name": "course_id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "minimum": 1,
                        "maximum": 100,
                        "description": "Course id"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/Course"}
                    },
                    "400": {
                        "description": "Id out of range",
                        "schema": {"$ref": "#/definitions/ValidationBody"}
                    },
                    "404": {
                        "description": "Course not found",
                        "schema": {"$ref": "#/definitions/ErrorBody"}
                    },
                    "500": {
                        "description": "Database or internal error",
                        "schema": {"$ref": "#/definitions/ErrorBody"}
                    }
                }
            }
        }
    },
    "definitions": {
        "NewCourseRequest": {
            "type": "object",
            "required": ["tutor_id", "course_name"],
            "properties": {
                "tutor_id": {"type": "integer", "minimum": 1, "maximum": 100, "example": 1},
                "course_name": {"type": "string", "minLength": 3, "example": "Rust 101"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "tutor_id": {"type": "integer", "example": 1},
                "course_id": {"type": "integer", "example": 1},
                "course_name": {"type": "string", "example": "Rust 101"},
                "posted_time": {"type": "string", "format": "date-time"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "code": {"type": "string", "example": "not_found"},
                "error_message": {"type": "string", "example": "Course not found"}
            }
        },
        "ValidationBody": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "custom_message": {"type": "string", "example": "Validation error"},
                "errors": {
                    "type": "array",
                    "items": {"type": "string", "example": "course_name: must be at least 3 characters"}
                }
            }
        }
    },
    "tags": [
        {"name": "Health", "description": "Liveness and visit counter"},
        {"name": "Courses", "description": "Tutor course catalog"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Tutor Course API",
	Description:      "Course catalog service for tutors",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
