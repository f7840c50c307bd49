package renderer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessCommandLineArgs(t *testing.T) {
	cfg, help, err := ProcessCommandLineArgs(nil)
	require.NoError(t, err)
	assert.False(t, help)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, help, err = ProcessCommandLineArgs([]string{"--debug-layer"})
	require.NoError(t, err)
	assert.False(t, help)
	assert.True(t, cfg.DebugLayer)

	for _, arg := range []string{"--help", "-h"} {
		_, help, err = ProcessCommandLineArgs([]string{arg})
		require.NoError(t, err)
		assert.True(t, help)
	}

	_, _, err = ProcessCommandLineArgs([]string{"--debug-layer", "--fullscreen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--fullscreen")
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)
	assert.Contains(t, buf.String(), "--debug-layer")
	assert.Contains(t, buf.String(), "--help")
}

func TestFrameStats(t *testing.T) {
	var clock time.Duration
	s := &FrameStats{now: func() time.Duration { return clock }, interval: 2 * time.Second}

	for i := 0; i < 59; i++ {
		clock += 25 * time.Millisecond
		_, _, ok := s.Tick()
		assert.False(t, ok)
	}

	clock = 2 * time.Second
	fps, frameTime, ok := s.Tick()
	require.True(t, ok)
	assert.InDelta(t, 30, fps, 1e-9)
	assert.Equal(t, 2*time.Second/60, frameTime)

	clock += time.Second
	_, _, ok = s.Tick()
	assert.False(t, ok)
}
