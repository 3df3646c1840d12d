package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickStringAliasPrecedence(t *testing.T) {
	raw := map[string]any{"id": "generic", "id_tour": float64(7)}
	assert.Equal(t, "7", pickString(raw, "id_tour", "id"), "first alias present wins")
	assert.Equal(t, "generic", pickString(raw, "missing", "id"))
	assert.Equal(t, "", pickString(raw, "missing"))
}

func TestPickFloatCoercions(t *testing.T) {
	raw := map[string]any{"a": 1.5, "b": "2.25", "c": "not a number", "d": float64(3)}
	assert.Equal(t, 1.5, pickFloat(raw, "a"))
	assert.Equal(t, 2.25, pickFloat(raw, "b"), "numeric strings coerce")
	assert.Equal(t, 0.0, pickFloat(raw, "c"))
	assert.Equal(t, 3.0, pickFloat(raw, "d"))
	assert.Equal(t, 0.0, pickFloat(raw, "missing"))
}

func TestPickBoolAndInt(t *testing.T) {
	raw := map[string]any{"flag": true, "n": float64(12), "s": "4"}
	assert.True(t, pickBool(raw, "flag"))
	assert.False(t, pickBool(raw, "missing"))
	assert.Equal(t, 12, pickInt(raw, "n"))
	assert.Equal(t, 4, pickInt(raw, "s"))
}

func TestPickStringSlice(t *testing.T) {
	raw := map[string]any{"imagenes": []any{"a.jpg", "b.jpg"}}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, pickStringSlice(raw, "imagenes"))
	assert.Empty(t, pickStringSlice(raw, "missing"))
}
