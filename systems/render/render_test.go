package render

import (
	"testing"
	"time"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryActionIsBound(t *testing.T) {
	for id := cfg.ActionMoveLeft; id < cfg.ActionCount; id++ {
		b, ok := Input.Bindings[id]
		require.True(t, ok, "action %d", id)
		assert.NotEmpty(t, len(b.Keys)+len(b.MouseButtons)+len(b.StandardGamepadButtons), "action %d", id)
	}
}

func TestSynthTone(t *testing.T) {
	pcm := synthTone(cfg.Tone{Frequency: 440, Duration: 100 * time.Millisecond, Volume: 1}, 44100)
	assert.Len(t, pcm, 4410*4)
	assert.Equal(t, []byte{0, 0, 0, 0}, pcm[:4], "the tone starts at zero phase")
}
