package main

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/gunplay/ecs"
	"github.com/rs/zerolog/log"
)

const (
	sampleRate   = 44100
	soundSeconds = 0.12
	soundVolume  = 0.4

	particleLifetime = 0.4
	beamLifetime     = 0.08
)

type particleMarker struct {
	ecs.ParticleEvent
	expires float64
}

type beamMarker struct {
	ecs.BeamEvent
	expires float64
}

// Effects turns sound cues into synthesized clicks and keeps short-lived
// particle and beam markers for the renderer.
type Effects struct {
	audioContext *audio.Context
	sounds       map[string][]byte

	particles []particleMarker
	beams     []beamMarker
}

func NewEffects() *Effects {
	return &Effects{
		audioContext: audio.NewContext(sampleRate),
		sounds:       make(map[string][]byte),
	}
}

func (fx *Effects) PlaySound(cue string) {
	if fx == nil || cue == "" {
		return
	}
	pcm, ok := fx.sounds[cue]
	if !ok {
		pcm = synthShot(cue)
		fx.sounds[cue] = pcm
	}
	player := fx.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(soundVolume)
	player.Play()
	log.Debug().Str("cue", cue).Msg("effects: sound")
}

func (fx *Effects) AddParticle(evt ecs.ParticleEvent, now float64) {
	fx.particles = append(fx.particles, particleMarker{ParticleEvent: evt, expires: now + particleLifetime})
}

func (fx *Effects) AddBeam(evt ecs.BeamEvent, now float64) {
	fx.beams = append(fx.beams, beamMarker{BeamEvent: evt, expires: now + beamLifetime})
}

// Update drops expired markers.
func (fx *Effects) Update(now float64) {
	fx.particles = keepLive(fx.particles, now, func(m particleMarker) float64 { return m.expires })
	fx.beams = keepLive(fx.beams, now, func(m beamMarker) float64 { return m.expires })
}

func keepLive[T any](markers []T, now float64, expires func(T) float64) []T {
	out := markers[:0]
	for _, m := range markers {
		if expires(m) > now {
			out = append(out, m)
		}
	}
	return out
}

// synthShot renders a decaying noise burst over a low thump. The cue name
// seeds the noise and pitch so different cues sound different.
func synthShot(cue string) []byte {
	h := fnv.New64a()
	_, _ = h.Write([]byte(cue))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	freq := 70 + float64(seed%60)

	frames := int(sampleRate * soundSeconds)
	out := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		env := math.Exp(-t * 40)
		v := env * (0.6*(rng.Float64()*2-1) + 0.4*math.Sin(2*math.Pi*freq*t))
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
