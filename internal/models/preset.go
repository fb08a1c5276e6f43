package models

import "strconv"

// Preset is a named duration offered for starting an interval.
type Preset struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// DefaultPresets are the focus durations offered when none are configured.
var DefaultPresets = []Preset{
	NewPreset(25),
	NewPreset(30),
	NewPreset(35),
	NewPreset(40),
	NewPreset(45),
	NewPreset(50),
}

// NewPreset returns a preset labelled with its length in minutes.
func NewPreset(minutes int) Preset {
	return Preset{
		Label:   strconv.Itoa(minutes),
		Minutes: minutes,
	}
}

// PresetsFromMinutes converts a list of minute values into presets.
func PresetsFromMinutes(minutes []int) []Preset {
	presets := make([]Preset, 0, len(minutes))

	for _, m := range minutes {
		presets = append(presets, NewPreset(m))
	}

	return presets
}

// Seconds returns the preset length in seconds.
func (p Preset) Seconds() int {
	return p.Minutes * 60
}
