// Package swagger registers the API document served under /swagger.
// Regenerate with: swag init -g cmd/serve.go -o docs/swagger
package swagger

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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"},
        "BearerAuth": {"type": "apiKey", "in": "header", "name": "Authorization"}
    },
    "security": [{"ApiKeyAuth": []}, {"BearerAuth": []}],
    "paths": {
        "/api/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/images/{key}": {
            "delete": {
                "tags": ["images"],
                "summary": "Delete Image",
                "description": "Deletes the object with the given (URL encoded) key.",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Object key", "name": "key", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/images.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/images.DeleteResponse"}},
                    "500": {"description": "Storage Error", "schema": {"$ref": "#/definitions/images.DeleteResponse"}}
                }
            }
        },
        "/api/images/delete-by-url": {
            "post": {
                "tags": ["images"],
                "summary": "Delete Image By URL",
                "description": "Derives the object key from a public asset URL and deletes it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"description": "Public URL", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/images.deleteByURLRequest"}}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/images.DeleteResponse"}},
                    "400": {"description": "Missing or invalid URL"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/images.DeleteResponse"}}
                }
            }
        },
        "/api/images/list": {
            "get": {
                "tags": ["images"],
                "summary": "List Images",
                "description": "Lists objects under a prefix (admin only).",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Folder prefix", "name": "prefix", "in": "query"},
                    {"type": "integer", "description": "Maximum results (at most 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Images", "schema": {"type": "array", "items": {"$ref": "#/definitions/assets.Resource"}}},
                    "403": {"description": "Admin only"}
                }
            }
        },
        "/api/images/cleanup-check": {
            "get": {
                "tags": ["images"],
                "summary": "Orphan Image Report",
                "description": "Compares stored objects with the asset references in the database. Nothing is deleted (admin only).",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Folder prefix", "name": "prefix", "in": "query"},
                    {"type": "integer", "description": "Maximum objects scanned (at most 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/reconcile.Report"}},
                    "403": {"description": "Admin only"}
                }
            }
        },
        "/api/data/{kind}/{id}": {
            "put": {
                "tags": ["data"],
                "summary": "Update Entity",
                "description": "Updates columns of one row. Replacing the asset column deletes the previous object after the update commits.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Entity kind (users, vendor, barang, pembelian, mutasi_gudang)", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "Natural key", "name": "id", "in": "path", "required": true},
                    {"description": "Column values", "name": "fields", "in": "body", "required": true, "schema": {"type": "object", "additionalProperties": true}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory.MutationResult"}},
                    "400": {"description": "Invalid kind or field"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["data"],
                "summary": "Delete Entity",
                "description": "Deletes one row, then the object its asset column referenced.",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Entity kind", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "Natural key", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inventory.MutationResult"}},
                    "400": {"description": "Invalid kind"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/integrity": {
            "get": {
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Healthy", "schema": {"$ref": "#/definitions/integrity.Report"}},
                    "503": {"description": "Unhealthy", "schema": {"$ref": "#/definitions/integrity.Report"}}
                }
            }
        },
        "/integrity/schema": {
            "get": {
                "tags": ["integrity"],
                "summary": "Check Store Schema",
                "produces": ["application/json"],
                "responses": {"200": {"description": "Schema Report", "schema": {"$ref": "#/definitions/checks.SchemaReport"}}}
            }
        },
        "/integrity/storage": {
            "get": {
                "tags": ["integrity"],
                "summary": "Check Asset Store",
                "produces": ["application/json"],
                "responses": {"200": {"description": "Storage Report", "schema": {"$ref": "#/definitions/checks.StorageReport"}}}
            }
        }
    },
    "definitions": {
        "assets.Resource": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "url": {"type": "string"},
                "format": {"type": "string"},
                "sizeBytes": {"type": "integer"},
                "createdAt": {"type": "string"}
            }
        },
        "assets.Result": {
            "type": "object",
            "properties": {
                "outcome": {"type": "string", "enum": ["deleted", "not_found", "failed"]},
                "key": {"type": "string"}
            }
        },
        "images.DeleteResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "outcome": {"type": "string", "enum": ["deleted", "not_found", "failed"]},
                "key": {"type": "string"},
                "derivedKey": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "images.deleteByURLRequest": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "inventory.MutationResult": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "key": {"type": "string"},
                "asset": {"$ref": "#/definitions/assets.Result"}
            }
        },
        "reconcile.Report": {
            "type": "object",
            "properties": {
                "prefix": {"type": "string"},
                "totalInStorage": {"type": "integer"},
                "totalInStore": {"type": "integer"},
                "orphanCount": {"type": "integer"},
                "orphans": {"type": "array", "items": {"type": "string"}},
                "scannedAt": {"type": "string"}
            }
        },
        "checks.SchemaReport": {
            "type": "object",
            "properties": {
                "matched": {"type": "boolean"},
                "tables": {"type": "object", "additionalProperties": {"$ref": "#/definitions/checks.TableReport"}},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "checks.TableReport": {
            "type": "object",
            "properties": {
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "checks.StorageReport": {
            "type": "object",
            "properties": {
                "provider": {"type": "string"},
                "reachable": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "integrity.Report": {
            "type": "object",
            "properties": {
                "healthy": {"type": "boolean"},
                "schema": {"$ref": "#/definitions/checks.SchemaReport"},
                "storage": {"$ref": "#/definitions/checks.StorageReport"},
                "errors": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventory Sync API",
	Description:      "Image lifecycle, entity mutation and integrity endpoints of the inventory sync service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
