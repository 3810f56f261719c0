package audio

import (
	"bytes"

	"github.com/go-audio/wav"
)

// Info describes a WAV clip header.
type Info struct {
	SampleRate int
	Channels   int
	Duration   float64
}

// Probe reads header data from a WAV clip. Non-WAV input yields a zero
// Info rather than an error; the result is only used for reporting, never
// for decoding.
func Probe(data []byte) Info {
	d := wav.NewDecoder(bytes.NewReader(data))
	d.ReadInfo()
	if !d.IsValidFile() {
		return Info{}
	}
	info := Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
	}
	if dur, err := d.Duration(); err == nil {
		info.Duration = dur.Seconds()
	}
	return info
}
