package audio

import "github.com/lixenwraith/rewind/parameter"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns audio enabled at the default master volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	cfg.EffectVolumes[SoundTimeout] = 0.8
	return cfg
}

// Volume returns the effective volume of a sound, clamped to [0, 1]
func (c *AudioConfig) Volume(s SoundType) float64 {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return min(max(c.EffectVolumes[s]*c.MasterVolume, 0), 1)
}
