package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pointSchema = MustCompile("point", []byte(`{
  "type": "object",
  "required": ["x", "y"],
  "properties": {"x": {"type": "integer"}, "y": {"type": "integer"}}
}`))

func TestDecode(t *testing.T) {
	var p struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	require.NoError(t, pointSchema.Decode([]byte(`{"x": 1, "y": 2}`), &p))
	assert.Equal(t, 1, p.X)
	assert.Equal(t, 2, p.Y)
}

func TestDecodeRejectsMismatch(t *testing.T) {
	var p map[string]any
	err := pointSchema.Decode([]byte(`{"x": "one"}`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point")
	assert.Nil(t, p)

	assert.Error(t, pointSchema.Validate([]byte(`not json`)))
}

func TestMustCompilePanicsOnBadSchema(t *testing.T) {
	assert.Panics(t, func() { MustCompile("bad", []byte(`{"type": 12}`)) })
}
