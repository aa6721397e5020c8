package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Eventure Events API",
        "description": "Public event gallery, submissions and image uploads",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Read-side gallery and FAQs"},
        {"name": "Submissions", "description": "Event submission and image upload"},
        {"name": "Operations", "description": "Health and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Operations"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Operations"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store unreachable"}
                }
            }
        },
        "/api/v1/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List gallery events",
                "parameters": [
                    {"name": "categories", "in": "query", "type": "string"},
                    {"name": "price", "in": "query", "type": "string", "enum": ["all", "free", "paid"]},
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["date-asc", "date-desc", "name-asc", "name-desc"]}
                ],
                "responses": {
                    "200": {"description": "Ordered visible subset"},
                    "400": {"description": "Invalid price or sort key", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/v1/events/recent": {
            "get": {
                "tags": ["Submissions"],
                "summary": "List recently submitted events",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Newest submissions first"}
                }
            }
        },
        "/api/v1/faqs": {
            "get": {
                "tags": ["Events"],
                "summary": "List frequently asked questions",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "FAQ entries"}
                }
            }
        },
        "/api/v1/events/submit": {
            "post": {
                "tags": ["Submissions"],
                "summary": "Submit a new event",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "Confirmation with id and createdAt"},
                    "400": {"description": "Field-keyed validation errors", "schema": {"$ref": "#/definitions/FieldErrors"}},
                    "500": {"description": "Persistence failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/v1/events/upload-image": {
            "post": {
                "tags": ["Submissions"],
                "summary": "Upload an event image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "Public image URL"},
                    "400": {"description": "Missing or invalid file", "schema": {"$ref": "#/definitions/APIError"}},
                    "503": {"description": "Storage failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "SubmitEventRequest": {
            "type": "object",
            "required": ["title", "description", "event_date", "start_time", "location", "category"],
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string", "maxLength": 2000},
                "event_date": {"type": "string", "format": "date"},
                "start_time": {"type": "string", "example": "18:30"},
                "end_time": {"type": "string", "example": "21:00"},
                "location": {"type": "string", "maxLength": 300},
                "category": {"type": "string"},
                "contact_email": {"type": "string"},
                "contact_phone": {"type": "string", "maxLength": 32},
                "website": {"type": "string"},
                "image_url": {"type": "string"}
            }
        },
        "FieldErrors": {
            "type": "object",
            "properties": {
                "fieldErrors": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"type": "string"}}
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
