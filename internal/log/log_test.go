package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWriteToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Infow("export stored", "weeks", 3)
	Errorf("upload failed: %s", "denied")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "export stored", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["weeks"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "upload failed: denied", entries[1].Message)
}

func TestInit(t *testing.T) {
	require.NoError(t, Init(true))
	assert.NotNil(t, Logger())
	Sync()
}
