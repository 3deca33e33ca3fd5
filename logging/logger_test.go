package logging

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	n, err := pw.Write([]byte("one\ntw"))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "> one\n", out.String(), "partial line stays buffered")

	_, err = pw.Write([]byte("o\nthree\n"))
	assert.NoError(t, err)
	assert.Equal(t, "> one\n> two\n> three\n", out.String())
}

func TestNewLogger_Levels(t *testing.T) {
	t.Setenv(EnvJSONLog, "")

	var out bytes.Buffer
	logger := NewLogger("iconforge", "warn", &out)

	logger.Info("hidden")
	logger.Warn("shown", "file", "favicon.ico")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "file=favicon.ico")
	assert.Contains(t, out.String(), "🖼️")
	assert.Equal(t, hclog.Warn, logger.GetLevel())
}

func TestNewLogger_JSON(t *testing.T) {
	t.Setenv(EnvJSONLog, "1")

	var out bytes.Buffer
	logger := NewLogger("iconforge", "info", &out)
	logger.Info("created", "size", 64)

	assert.Contains(t, out.String(), `"@message":"created"`)
	assert.Contains(t, out.String(), `"size":64`)
	assert.NotContains(t, out.String(), "🖼️")
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, DefaultLevel, GetLogLevel(""))

	t.Setenv(EnvLogLevel, "debug")
	assert.Equal(t, "debug", GetLogLevel(""))
	assert.Equal(t, "error", GetLogLevel("error"))
}
