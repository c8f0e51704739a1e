package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	debug := New("DEBUG")
	assert.True(t, debug.Desugar().Core().Enabled(zapcore.DebugLevel))

	info := New("warn")
	assert.False(t, info.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, info.Desugar().Core().Enabled(zapcore.InfoLevel))
}
