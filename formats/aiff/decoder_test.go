// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: m.sampleRate, NumChannels: m.channels}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func newTestSource(bitDepth int, samples []int) *source {
	return &source{
		dec:        &mockAiffReader{sampleRate: 44100, channels: 2, samples: samples},
		sampleRate: 44100,
		channels:   2,
		bitDepth:   bitDepth,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not AIFF data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int
		want     float32
	}{
		{8, -128, -1},
		{16, 16384, 0.5},
		{24, -4194304, -0.5},
		{32, 1073741824, 0.5},
	}

	for _, tt := range tests {
		src := newTestSource(tt.bitDepth, []int{tt.sample, 0})
		buf := make([]float32, 2)

		if _, err := src.ReadSamples(buf); err != nil {
			t.Fatalf("%d-bit ReadSamples() error = %v", tt.bitDepth, err)
		}
		if buf[0] != tt.want {
			t.Errorf("%d-bit sample %d = %v, want %v", tt.bitDepth, tt.sample, buf[0], tt.want)
		}
	}
}

func TestSource_ShortReadIsEOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, []int{1, 2, 3, 4})
	buf := make([]float32, 8)

	n, err := src.ReadSamples(buf)
	if n != 4 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (4, io.EOF)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("drained ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad chunk")
	src := newTestSource(16, nil)
	src.dec = &mockAiffReader{err: boom}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped %v", err, boom)
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(16, []int{1})
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
