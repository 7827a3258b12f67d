package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>gsschool-backend — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public API surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "gsschool-backend", "version": "v0.1.0" },
  "paths": {
    "/api/auth/login": {
      "post": {
        "summary": "Admin login",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "session cookie set, token returned" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/logout": {
      "post": { "summary": "Clear the session cookie", "responses": { "200": { "description": "logged out" } } }
    },
    "/api/auth/me": {
      "get": { "summary": "Current session identity", "responses": { "200": { "description": "identity" }, "401": { "description": "no valid session" } } }
    },
    "/api/content/home": {
      "get": { "summary": "Home page document", "responses": { "200": { "description": "document" } } },
      "put": { "summary": "Replace home page document", "responses": { "200": { "description": "saved" }, "401": { "description": "unauthorized" } } }
    },
    "/api/content/about": {
      "get": { "summary": "About page document", "responses": { "200": { "description": "document" } } },
      "put": { "summary": "Replace about page document", "responses": { "200": { "description": "saved" }, "401": { "description": "unauthorized" } } }
    },
    "/api/content/page/{key}": {
      "get": { "summary": "Page document by key", "parameters": [{"name":"key","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "document" }, "404": { "description": "unknown page key" } } },
      "put": { "summary": "Replace page document by key", "parameters": [{"name":"key","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "saved" }, "401": { "description": "unauthorized" }, "404": { "description": "unknown page key" } } }
    },
    "/api/notices": {
      "get": { "summary": "Active notices, newest first", "responses": { "200": { "description": "notice list" } } },
      "post": { "summary": "Create notice", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"content":{"type":"string"},"level":{"type":"string"},"image":{"type":"string"},"expiresAt":{"type":"string"}}}}}}, "responses": { "200": { "description": "created notice" }, "401": { "description": "unauthorized" } } }
    },
    "/api/notices/{id}": {
      "delete": { "summary": "Delete notice", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deleted" }, "401": { "description": "unauthorized" } } }
    },
    "/api/gallery": {
      "get": { "summary": "Gallery items, newest first", "responses": { "200": { "description": "item list" } } },
      "post": { "summary": "Upload gallery image", "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"image":{"type":"string","format":"binary"},"title":{"type":"string"},"description":{"type":"string"},"category":{"type":"string"},"date":{"type":"string"}}}}}}, "responses": { "200": { "description": "created item" }, "400": { "description": "missing image file" }, "401": { "description": "unauthorized" } } }
    },
    "/api/upload": {
      "post": { "summary": "Upload a standalone media file", "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"image":{"type":"string","format":"binary"}}}}}}, "responses": { "200": { "description": "public path of the stored file" }, "400": { "description": "missing image file" }, "401": { "description": "unauthorized" } } }
    },
    "/api/gallery/{id}": {
      "delete": { "summary": "Delete gallery item and its stored file", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deleted" }, "401": { "description": "unauthorized" } } }
    },
    "/api/health": { "get": { "summary": "Diagnostic snapshot", "responses": { "200": { "description": "status, data counts, security config" } } } }
  }
}`
