// Package docs holds the swagger document served under /swagger/.
// It is maintained by hand next to the handler annotations; keep them in sync.
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
        "/simulation/cancel": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["simulation"],
                "summary": "Simulate cancelling subscriptions",
                "parameters": [
                    {"type": "string", "description": "Echoed back for stale-response detection", "name": "X-Request-Id", "in": "header"},
                    {"description": "Subscriptions to cancel", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CancelSimulationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SimulationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/simulation/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["simulation"],
                "summary": "Simulate adding a subscription",
                "parameters": [
                    {"description": "Virtual subscription", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.AddSimulationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SimulationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/simulation/combined": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["simulation"],
                "summary": "Simulate cancellations and additions together",
                "parameters": [
                    {"description": "Scenario", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CombinedSimulationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SimulationResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/simulation/apply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["simulation"],
                "summary": "Apply a cancel simulation",
                "parameters": [
                    {"description": "Action and subscriptions", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ApplySimulationRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/simulation/undo": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["simulation"],
                "summary": "Undo the last applied simulation",
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "undo_unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/subscriptions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "List subscriptions",
                "parameters": [
                    {"type": "string", "description": "active, paused or cancelled", "name": "status", "in": "query"},
                    {"type": "string", "description": "Category ID", "name": "categoryId", "in": "query"},
                    {"type": "string", "description": "amount, satisfaction, next_billing_date or created_at", "name": "sortBy", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "sortOrder", "in": "query"},
                    {"type": "integer", "description": "Page, from 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page, max 100", "name": "perPage", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SubscriptionPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Create a subscription",
                "parameters": [
                    {"description": "Subscription data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SubscriptionInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/subscriptions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Get subscription by ID",
                "parameters": [{"type": "string", "description": "Subscription ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SubscriptionView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Update a subscription",
                "parameters": [
                    {"type": "string", "description": "Subscription ID", "name": "id", "in": "path", "required": true},
                    {"description": "Subscription data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SubscriptionInput"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["subscriptions"],
                "summary": "Delete a subscription",
                "parameters": [{"type": "string", "description": "Subscription ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/subscriptions/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Change subscription status",
                "parameters": [
                    {"type": "string", "description": "Subscription ID", "name": "id", "in": "path", "required": true},
                    {"description": "Target status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ChangeStatusRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "invalid_transition", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "System categories plus the caller's own",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "Category", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateCategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "system category", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/dashboard/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Spending summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DashboardSummary"}}
                }
            }
        },
        "/dashboard/recommendations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Cancellation candidates",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CancelRecommendation"}}}
                }
            }
        },
        "/dashboard/upcoming": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Active subscriptions billed between today and today+days. days defaults to 30, max 90.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Payments due soon",
                "parameters": [
                    {"type": "integer", "description": "window in days", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.UpcomingPayment"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.CategoryBreakdown": {
            "type": "object",
            "properties": {
                "categoryId": {"type": "string"},
                "categoryName": {"type": "string"},
                "categoryColor": {"type": "string"},
                "amount": {"type": "integer"},
                "percentage": {"type": "number"},
                "count": {"type": "integer"}
            }
        },
        "domain.SimulationResult": {
            "type": "object",
            "properties": {
                "currentMonthlyTotal": {"type": "integer"},
                "simulatedMonthlyTotal": {"type": "integer"},
                "monthlyDifference": {"type": "integer"},
                "annualDifference": {"type": "integer"},
                "categoryBreakdown": {"type": "array", "items": {"$ref": "#/definitions/domain.CategoryBreakdown"}}
            }
        },
        "domain.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "isSystem": {"type": "boolean"},
                "sortOrder": {"type": "integer"},
                "createdAt": {"type": "string"}
            }
        },
        "domain.SubscriptionView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "serviceName": {"type": "string"},
                "amount": {"type": "integer"},
                "billingCycle": {"type": "string", "enum": ["monthly", "yearly", "weekly"]},
                "currency": {"type": "string"},
                "nextBillingDate": {"type": "string"},
                "autoRenew": {"type": "boolean"},
                "status": {"type": "string", "enum": ["active", "paused", "cancelled"]},
                "satisfactionScore": {"type": "integer"},
                "categoryId": {"type": "string"},
                "note": {"type": "string"},
                "serviceUrl": {"type": "string"},
                "startDate": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "category": {"$ref": "#/definitions/domain.Category"},
                "monthlyAmount": {"type": "integer"},
                "annualAmount": {"type": "integer"}
            }
        },
        "domain.SubscriptionPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.SubscriptionView"}},
                "page": {"type": "integer"},
                "perPage": {"type": "integer"},
                "totalItems": {"type": "integer"}
            }
        },
        "domain.DashboardSummary": {
            "type": "object",
            "properties": {
                "monthlyTotal": {"type": "integer"},
                "annualTotal": {"type": "integer"},
                "activeCount": {"type": "integer"},
                "pausedCount": {"type": "integer"},
                "categoryBreakdown": {"type": "array", "items": {"$ref": "#/definitions/domain.CategoryBreakdown"}}
            }
        },
        "domain.CancelRecommendation": {
            "type": "object",
            "properties": {
                "subscriptionId": {"type": "string"},
                "serviceName": {"type": "string"},
                "monthlyAmount": {"type": "integer"},
                "annualSaving": {"type": "integer"},
                "satisfactionScore": {"type": "integer"},
                "reason": {"type": "string"}
            }
        },
        "domain.UpcomingPayment": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "daysUntil": {"type": "integer"},
                "subscriptionId": {"type": "string"},
                "serviceName": {"type": "string"},
                "amount": {"type": "integer"},
                "monthlyAmount": {"type": "integer"},
                "categoryName": {"type": "string"},
                "categoryColor": {"type": "string"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "handler.IDResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "service.CancelSimulationRequest": {
            "type": "object",
            "properties": {
                "subscriptionIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "service.AddSimulationRequest": {
            "type": "object",
            "required": ["serviceName", "amount", "billingCycle"],
            "properties": {
                "serviceName": {"type": "string", "maxLength": 50, "minLength": 1},
                "amount": {"type": "integer", "minimum": 1, "maximum": 9999999},
                "billingCycle": {"type": "string", "enum": ["monthly", "yearly", "weekly"]},
                "categoryId": {"type": "string"}
            }
        },
        "service.CombinedSimulationRequest": {
            "type": "object",
            "properties": {
                "cancelSubscriptionIds": {"type": "array", "items": {"type": "string"}},
                "addItems": {"type": "array", "items": {"$ref": "#/definitions/service.AddSimulationRequest"}}
            }
        },
        "service.ApplySimulationRequest": {
            "type": "object",
            "required": ["action", "subscriptionIds"],
            "properties": {
                "action": {"type": "string", "enum": ["cancel"]},
                "subscriptionIds": {"type": "array", "minItems": 1, "items": {"type": "string"}}
            }
        },
        "service.SubscriptionInput": {
            "type": "object",
            "required": ["serviceName", "billingCycle", "nextBillingDate", "startDate"],
            "properties": {
                "serviceName": {"type": "string", "maxLength": 50, "minLength": 1},
                "amount": {"type": "integer", "minimum": 0, "maximum": 9999999},
                "billingCycle": {"type": "string", "enum": ["monthly", "yearly", "weekly"]},
                "currency": {"type": "string"},
                "nextBillingDate": {"type": "string", "example": "2026-04-01"},
                "autoRenew": {"type": "boolean"},
                "satisfactionScore": {"type": "integer", "maximum": 5, "minimum": 1},
                "categoryId": {"type": "string"},
                "note": {"type": "string", "maxLength": 500},
                "serviceUrl": {"type": "string"},
                "startDate": {"type": "string", "example": "2025-01-01"}
            }
        },
        "service.ChangeStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["active", "paused", "cancelled"]}
            }
        },
        "service.CreateCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 50, "minLength": 1},
                "color": {"type": "string", "example": "#E50914"},
                "sortOrder": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SubKeep API",
	Description:      "Subscription expense tracking with what-if simulations and undoable cancellation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
