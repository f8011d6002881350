package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	data, err := JSON()
	require.NoError(t, err)

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	for _, path := range []string{"/students", "/student/grade", "/student/grade/{StudentID}"} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.Contains(t, doc.Paths["/student/grade"], "get")
	assert.Contains(t, doc.Paths["/student/grade"], "post")
}

func TestNormalize(t *testing.T) {
	in := map[any]any{200: map[any]any{"description": "ok"}, "list": []any{map[any]any{1: "x"}}}

	out, err := json.Marshal(normalize(in))
	require.NoError(t, err)
	assert.JSONEq(t, `{"200":{"description":"ok"},"list":[{"1":"x"}]}`, string(out))
}
