package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"

	"spamjar/internal/core/version"
)

// SpecMutator lets modules tweak the OpenAPI document before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// Register adds a spec mutator; call it while wiring modules
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// docReader is a seam so tests can inject a broken document
var docReader = func() string { return baseDoc }

// serveDocJSON serves the OpenAPI document after module mutators ran
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Version
		}

		mu.Lock()
		for _, m := range mutators {
			m(spec)
		}
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

const baseDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "spamjar API", "version": "0.0.0",
    "description": "Spam detection for YouTube comments"},
  "paths": {
    "/v1/health": {"get": {"summary": "Liveness and version",
      "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Health"}}}}}}},
    "/v1/detect": {"post": {"summary": "Classify one comment",
      "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/DetectionRequest"}}}},
      "responses": {
        "200": {"description": "verdict", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/DetectionResult"}}}},
        "422": {"description": "invalid input", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
        "500": {"description": "internal error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}}}},
    "/v1/process_page/{video_id}": {"get": {"summary": "Classify the first page of a video's comments",
      "parameters": [
        {"name": "video_id", "in": "path", "required": true, "schema": {"type": "string", "pattern": "^[A-Za-z0-9_-]{1,64}$"}},
        {"name": "max_results", "in": "query", "schema": {"type": "integer", "minimum": 1, "maximum": 100, "default": 50}}],
      "responses": {
        "200": {"description": "batch", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/VideoBatchResult"}}}},
        "422": {"description": "invalid input", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}},
        "500": {"description": "upstream or internal error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}}}}}
  },
  "components": {"schemas": {
    "Health": {"type": "object", "properties": {"version": {"type": "string"}, "status": {"type": "string"}}},
    "DetectionRequest": {"type": "object", "required": ["content"],
      "properties": {"uuid": {"type": "string", "format": "uuid"}, "content": {"type": "string"}}},
    "DetectionResult": {"type": "object", "properties": {"uuid": {"type": "string", "format": "uuid"}, "is_spam": {"type": "boolean"}}},
    "VideoBatchResult": {"type": "object", "properties": {"id": {"type": "string"}, "nb": {"type": "integer"},
      "comments": {"type": "array", "items": {"$ref": "#/components/schemas/DetectionResult"}}}},
    "Error": {"type": "object", "properties": {"status_code": {"type": "integer"}, "status": {"type": "string"},
      "code": {"type": "integer"}, "error": {"type": "string"}, "request_id": {"type": "string"}}}
  }}
}`
