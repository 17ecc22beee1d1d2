package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWith(t *testing.T) {
	var buf bytes.Buffer

	InitWith("debug", "json", &buf)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	For("world").Debug("hello")
	require.Contains(t, buf.String(), `"component":"world"`)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestInitWith_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer

	InitWith("loud", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	Log.Debug("hidden")
	assert.Empty(t, buf.String())
}
