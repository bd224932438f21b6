package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "AlpsTech Academy API",
        "description": "Course catalog, student results and admin console for AlpsTech Academy",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Single active session"},
        {"name": "Courses", "description": "Public catalog and enrollment"},
        {"name": "Me", "description": "Signed-in student views"},
        {"name": "Admin", "description": "Session-scoped admin console"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Open a session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a student account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Close the session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "Browse courses",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string", "enum": ["all", "beginner", "intermediate", "advanced"]},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["default", "price-asc", "price-desc", "title-asc", "title-desc"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Course details",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/courses/{id}/enrollment": {
            "get": {
                "tags": ["Courses"],
                "summary": "Enrollment state of the current session",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/courses/{id}/enroll": {
            "post": {
                "tags": ["Courses"],
                "summary": "Enroll the current session",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Not logged in"},
                    "409": {"description": "Course closed for enrollment"}
                }
            }
        },
        "/me/dashboard": {
            "get": {
                "tags": ["Me"],
                "summary": "Student dashboard",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Not logged in"}}
            }
        },
        "/me/results": {
            "get": {
                "tags": ["Me"],
                "summary": "Student results with statistics",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "grade", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me/results/export": {
            "get": {
                "tags": ["Me"],
                "summary": "Download student results",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "File"}}
            }
        },
        "/admin/dashboard": {
            "get": {"tags": ["Admin"], "summary": "Admin dashboard", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/admin/students": {
            "get": {"tags": ["Admin"], "summary": "Registered students", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/demo-students": {
            "get": {"tags": ["Admin"], "summary": "Students results can be attributed to", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/courses": {
            "get": {
                "tags": ["Admin"],
                "summary": "Manage courses",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Admin"],
                "summary": "Add a course",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Course"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid payload"}}
            }
        },
        "/admin/courses/draft": {
            "get": {"tags": ["Admin"], "summary": "Prefilled course for the add form", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/courses/{id}": {
            "put": {
                "tags": ["Admin"],
                "summary": "Replace a course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Course"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Remove a course",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/admin/courses/{id}/status": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Change enrollment status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/results": {
            "get": {
                "tags": ["Admin"],
                "summary": "All student results",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "courseId", "in": "query", "type": "string"},
                    {"name": "grade", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Admin"],
                "summary": "Record a result",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResultDraft"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid payload"}}
            }
        },
        "/admin/results/draft": {
            "get": {"tags": ["Admin"], "summary": "Prefilled result for the add form", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/results/{id}": {
            "delete": {
                "tags": ["Admin"],
                "summary": "Remove a result",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/admin/results/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Download all student results",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [{"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}],
                "responses": {"200": {"description": "File"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SignupRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "instructor": {"type": "string"},
                "duration": {"type": "string"},
                "level": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
                "price": {"type": "integer"},
                "image": {"type": "string"},
                "enrollmentStatus": {"type": "string", "enum": ["open", "closed", "in progress"]}
            }
        },
        "CourseStatusRequest": {
            "type": "object",
            "properties": {
                "enrollmentStatus": {"type": "string", "enum": ["open", "closed", "in progress"]}
            }
        },
        "ResultDraft": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "courseId": {"type": "string"},
                "score": {"type": "integer"},
                "maxScore": {"type": "integer"},
                "date": {"type": "string", "format": "date"},
                "feedback": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
