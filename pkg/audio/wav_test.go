package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// buildWAV writes a minimal PCM16 mono WAV clip.
func buildWAV(sampleRate, samples int) []byte {
	dataLen := samples * 2
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))
	return buf.Bytes()
}

func TestProbeWAV(t *testing.T) {
	clip := buildWAV(16000, 8000) // half a second
	info := Probe(clip)
	if info.SampleRate != 16000 {
		t.Fatalf("expected sample rate 16000, got %d", info.SampleRate)
	}
	if info.Channels != 1 {
		t.Fatalf("expected mono, got %d channels", info.Channels)
	}
	if math.Abs(info.Duration-0.5) > 0.01 {
		t.Fatalf("expected duration ~0.5s, got %f", info.Duration)
	}
}

func TestProbeRejectsGarbage(t *testing.T) {
	info := Probe([]byte("definitely not audio"))
	if info != (Info{}) {
		t.Fatalf("expected zero info for garbage input, got %+v", info)
	}
}
