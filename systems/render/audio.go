package render

import (
	"encoding/binary"
	"math"
	"sync"

	cfg "github.com/automoto/chinchilla/config"
	"github.com/automoto/chinchilla/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	toneCache          = map[cfg.SoundID][]byte{}
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio plays the sound effects queued during the tick. Only the
// interactive scene calls it, so headless sessions never open a device.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	a := systems.GetAudio(e)
	for _, id := range a.PendingSFX {
		playSFX(id, a.SFXVolume)
	}
}

func playSFX(id cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return
	}

	pcm, ok := toneCache[id]
	if !ok {
		pcm = synthTone(tone, cfg.Audio.SampleRate)
		toneCache[id] = pcm
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume * tone.Volume)
	player.Play()
}

// synthTone renders a decaying sine as 16-bit little-endian stereo PCM.
func synthTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	buf := make([]byte, n*4)
	for i := range n {
		p := float64(i) / float64(sampleRate)
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*t.Frequency*p) * env * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
