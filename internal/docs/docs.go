// Package docs embeds the OpenAPI description of the HTTP API.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// YAML returns the OpenAPI document as written.
func YAML() []byte {
	return openAPIYAML
}

// JSON returns the OpenAPI document converted to JSON.
func JSON() ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(openAPIYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	out, err := json.Marshal(normalize(doc))
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	return out, nil
}

// normalize rewrites map[any]any nodes, which encoding/json cannot encode,
// into map[string]any.
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			node[k] = normalize(child)
		}
		return node
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range node {
			node[i] = normalize(child)
		}
		return node
	default:
		return v
	}
}
