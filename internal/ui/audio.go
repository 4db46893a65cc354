package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType names a sound effect.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundGameEnd
)

const sampleRate = 44100

// voice describes a synthesized effect. A decay of zero gives a chord with a
// linear fade in and out instead of an exponential tail.
type voice struct {
	freqs     []float64
	duration  float64
	amplitude float64
	decay     float64
	knock     bool // adds a wooden knock over the tone
}

var voices = map[SoundType]voice{
	SoundMove:    {freqs: []float64{440}, duration: 0.08, amplitude: 0.3, decay: 30, knock: true},
	SoundGameEnd: {freqs: []float64{261.63, 329.63, 392.00}, duration: 0.4, amplitude: 0.5},
}

// AudioManager plays the table's sound effects.
type AudioManager struct {
	context *audio.Context
	pcm     map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager synthesizes every effect up front.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		pcm:     make(map[SoundType][]byte, len(voices)),
		enabled: enabled,
		volume:  0.5,
	}
	for st, v := range voices {
		am.pcm[st] = synth(v)
	}
	return am
}

// synth renders v as 16-bit little-endian stereo PCM.
func synth(v voice) []byte {
	n := int(sampleRate * v.duration)
	data := make([]byte, n*4)

	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		s := 0.0
		for _, f := range v.freqs {
			s += math.Sin(2 * math.Pi * f * t)
		}
		s /= float64(len(v.freqs))
		if v.knock {
			s += (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		}
		putSample(data, i, s*envelope(v, t)*v.amplitude)
	}
	return data
}

func envelope(v voice, t float64) float64 {
	if v.decay > 0 {
		return math.Exp(-t * v.decay)
	}
	switch p := t / v.duration; {
	case p < 0.1:
		return p / 0.1
	case p > 0.7:
		return (1 - p) / 0.3
	}
	return 1
}

func putSample(data []byte, i int, sample float64) {
	val := int16(math.Max(-1, math.Min(1, sample)) * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// Play starts sound. Overlapping plays each get their own player. Play on a
// nil manager is a no-op.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil || !am.enabled {
		return
	}
	data, ok := am.pcm[sound]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled turns sound on or off.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}
