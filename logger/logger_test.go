package logger_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tacmove/logger"
)

func TestSetLevel(t *testing.T) {
	prev := logger.Log.GetLevel()
	t.Cleanup(func() { logger.Log.SetLevel(prev) })

	require.NoError(t, logger.SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, logger.Log.GetLevel())

	err := logger.SetLevel("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger:")
	assert.Equal(t, logrus.DebugLevel, logger.Log.GetLevel())
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevLevel := logger.Log.Out, logger.Log.GetLevel()
	t.Cleanup(func() {
		logger.Log.SetOutput(prevOut)
		logger.Log.SetLevel(prevLevel)
	})
	logger.Log.SetOutput(&buf)
	logger.Log.SetLevel(logrus.InfoLevel)

	logger.Component("pathfind").Info("planned")
	assert.Contains(t, buf.String(), "component=pathfind")
	assert.Contains(t, buf.String(), "planned")
}
