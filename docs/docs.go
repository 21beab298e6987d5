// Package docs registers the swagger document served at /swagger.
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
        "/jwt": {
            "post": {
                "description": "Sign a session token for the email and set it as the http-only \"token\" cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Issue session cookie",
                "parameters": [
                    {"description": "Session Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Clear session cookie",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SuccessResponse"}}
                }
            }
        },
        "/users/{email}": {
            "post": {
                "description": "Return the stored user for the email, or create a customer if none exists",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Save a user",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true},
                    {"description": "User", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpsertUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}
                }
            }
        },
        "/plants": {
            "get": {
                "description": "Get the first 20 plants",
                "produces": ["application/json"],
                "tags": ["Plants"],
                "summary": "Get plants",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Plant"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plants"],
                "summary": "Add a plant",
                "parameters": [
                    {"description": "Plant", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreatePlantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/plants/{id}": {
            "get": {
                "description": "Responds with null when no plant has the id",
                "produces": ["application/json"],
                "tags": ["Plants"],
                "summary": "Get plant by ID",
                "parameters": [
                    {"type": "string", "description": "Plant ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Plant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/plants/quantity/{id}": {
            "patch": {
                "description": "status \"increase\" adds quantityToUpdate, any other status subtracts it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plants"],
                "summary": "Update plant quantity",
                "parameters": [
                    {"type": "string", "description": "Plant ID", "name": "id", "in": "path", "required": true},
                    {"description": "Quantity change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.QuantityUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdateResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/order": {
            "post": {
                "description": "Reserves the ordered quantity on the plant and saves the order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "Order", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PlaceOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/order/{id}": {
            "delete": {
                "description": "Delivered orders cannot be cancelled (409, plain text)",
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Cancel an order",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeleteResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"type": "string"}}
                }
            }
        },
        "/customer-order/{email}": {
            "get": {
                "description": "Orders of the customer joined with plant name, image and category",
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Get customer orders",
                "parameters": [
                    {"type": "string", "description": "Customer email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CustomerOrder"}}}
                }
            }
        }
    },
    "definitions": {
        "models.Customer": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "image": {"type": "string"}, "name": {"type": "string"}}
        },
        "models.CustomerOrder": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "address": {"type": "string"},
                "category": {"type": "string"},
                "customer": {"$ref": "#/definitions/models.Customer"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "plantId": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"},
                "seller": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.CreatePlantRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "quantity": {"type": "integer", "minimum": 0},
                "seller": {"$ref": "#/definitions/models.Seller"}
            }
        },
        "models.DeleteResult": {
            "type": "object",
            "properties": {"acknowledged": {"type": "boolean"}, "deletedCount": {"type": "integer"}}
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.InsertResult": {
            "type": "object",
            "properties": {"acknowledged": {"type": "boolean"}, "insertedId": {"type": "string"}}
        },
        "models.PlaceOrderRequest": {
            "type": "object",
            "required": ["plantId", "quantity"],
            "properties": {
                "address": {"type": "string"},
                "customer": {"$ref": "#/definitions/models.Customer"},
                "plantId": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "quantity": {"type": "integer", "minimum": 1},
                "seller": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.Plant": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"},
                "seller": {"$ref": "#/definitions/models.Seller"}
            }
        },
        "models.QuantityUpdateRequest": {
            "type": "object",
            "required": ["quantityToUpdate"],
            "properties": {"quantityToUpdate": {"type": "integer", "minimum": 1}, "status": {"type": "string"}}
        },
        "models.Seller": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "image": {"type": "string"}, "name": {"type": "string"}}
        },
        "models.SessionRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "models.SuccessResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "models.UpdateResult": {
            "type": "object",
            "properties": {"acknowledged": {"type": "boolean"}, "matchedCount": {"type": "integer"}, "modifiedCount": {"type": "integer"}}
        },
        "models.UpsertUserRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "image": {"type": "string"}, "name": {"type": "string"}}
        },
        "models.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "email": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "timestamp": {"type": "integer"}
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
	Title:            "plantNet API",
	Description:      "Users, plant listings and customer orders for the plantNet marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
