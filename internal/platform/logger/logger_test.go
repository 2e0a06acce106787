package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("anything"))
}

func TestLogger_JSON_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "petshop-registry", Out: &buf})

	l.With(map[string]any{"request_id": "abc"}).Info("pet created", map[string]any{
		"pet_id": "p-1",
		"":       "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pet created", entry["message"])
	assert.Equal(t, "petshop-registry", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "p-1", entry["pet_id"])
	assert.NotContains(t, entry, "")
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatJSON, Out: &buf})

	l.Debug("debug", nil)
	l.Info("info", nil)
	assert.Empty(t, buf.String())

	l.Error("boom", map[string]any{"err": "x"})
	assert.True(t, strings.Contains(buf.String(), `"boom"`))
}
