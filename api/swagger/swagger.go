package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Employee Portal API",
        "description": "Faceted employee directory with bulk recycle-bin operations",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Directory", "description": "Employee search screen"},
        {"name": "Recycle", "description": "Recycle-bin screen"},
        {"name": "Intercom", "description": "Intercom directory screen"},
        {"name": "Counters", "description": "Shared navigation counters"},
        {"name": "Audit", "description": "Bulk-intent audit trail"}
    ],
    "paths": {
        "/directory/sessions": {
            "post": {
                "tags": ["Directory"],
                "summary": "Open a directory view session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Record store fetch failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}": {
            "delete": {
                "tags": ["Directory"],
                "summary": "Close a directory session",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Session not found"}
                }
            }
        },
        "/directory/sessions/{sessionId}/refresh": {
            "post": {
                "tags": ["Directory"],
                "summary": "Re-fetch the session's records",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/facets": {
            "get": {
                "tags": ["Directory"],
                "summary": "Facet values derived from the session's cache",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/filter": {
            "put": {
                "tags": ["Directory"],
                "summary": "Replace the session's filter state",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "Filtered first page", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/directory/sessions/{sessionId}/page": {
            "get": {
                "tags": ["Directory"],
                "summary": "Currently visible page",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/page/more": {
            "post": {
                "tags": ["Directory"],
                "summary": "Grow the pagination window by one page",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/selection/toggle": {
            "post": {
                "tags": ["Directory"],
                "summary": "Toggle selection for one employee",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/selection/toggle-all": {
            "post": {
                "tags": ["Directory"],
                "summary": "Toggle every employee in the filtered view",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/selection/next": {
            "post": {
                "tags": ["Directory"],
                "summary": "Select the next batch of unselected employees",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectNextRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/selection": {
            "delete": {
                "tags": ["Directory"],
                "summary": "Leave select mode, discarding the selection",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/directory/sessions/{sessionId}/recycle": {
            "post": {
                "tags": ["Directory"],
                "summary": "Move the selected employees to the recycle bin",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Committed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Empty selection"},
                    "502": {"description": "Mutation rejected, local state rolled back"}
                }
            }
        },
        "/recycle/sessions": {
            "post": {
                "tags": ["Recycle"],
                "summary": "Open a recycle-bin view session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/recycle/sessions/{sessionId}/restore": {
            "post": {
                "tags": ["Recycle"],
                "summary": "Restore the selected employees",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Committed, restored records included", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Mutation rejected, local state rolled back"}
                }
            }
        },
        "/recycle/sessions/{sessionId}/purge": {
            "post": {
                "tags": ["Recycle"],
                "summary": "Permanently delete the selected employees",
                "parameters": [
                    {"name": "sessionId", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Committed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Permanent delete failed"}
                }
            }
        },
        "/intercom/sessions": {
            "post": {
                "tags": ["Intercom"],
                "summary": "Open an intercom view session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/counters": {
            "get": {
                "tags": ["Counters"],
                "summary": "Recycle-bin and pending-request counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/audit/intents": {
            "get": {
                "tags": ["Audit"],
                "summary": "List bulk-intent audit entries",
                "parameters": [
                    {"name": "kind", "in": "query", "type": "string"},
                    {"name": "outcome", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "FilterRequest": {
            "type": "object",
            "properties": {
                "divisions": {"type": "array", "items": {"type": "string"}},
                "designations": {"type": "array", "items": {"type": "string"}},
                "functions": {"type": "array", "items": {"type": "string"}},
                "genders": {"type": "array", "items": {"type": "string"}},
                "locations": {"type": "array", "items": {"type": "string"}},
                "grades": {"type": "array", "items": {"type": "string"}},
                "bloodGroups": {"type": "array", "items": {"type": "string"}},
                "ageMin": {"type": "integer"},
                "ageMax": {"type": "integer"},
                "term": {"type": "string"},
                "field": {"type": "string", "enum": ["name", "employeeNumber", "email", "phone", "extension"]},
                "window": {"type": "string", "enum": ["all", "7d", "30d"]}
            }
        },
        "ToggleRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "integer"}
            }
        },
        "SelectNextRequest": {
            "type": "object",
            "required": ["count"],
            "properties": {
                "count": {"type": "integer", "minimum": 1}
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
