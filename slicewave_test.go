// SPDX-License-Identifier: EPL-2.0

package slicewave

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/ik5/slicewave/audio"
	"github.com/ik5/slicewave/internal/audiotest"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         LoadOptions
		wantRate     int
		wantChannels int
		wantFrames   int
	}{
		{"as is", LoadOptions{}, 16000, 2, 1600},
		{"mix down", LoadOptions{MixDown: true}, 16000, 1, 1600},
		{"resample", LoadOptions{SampleRate: 8000}, 8000, 2, 800},
		{"small blocks", LoadOptions{BlockSize: 6, SampleRate: 16000}, 16000, 2, 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewRampSource(16000, 2, 1600)
			buf, err := Decode(src, tt.opts)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if buf.SampleRate() != tt.wantRate || buf.NumChannels() != tt.wantChannels || buf.NumFrames() != tt.wantFrames {
				t.Errorf("Decode() = %d Hz %d ch %d frames, want %d Hz %d ch %d frames",
					buf.SampleRate(), buf.NumChannels(), buf.NumFrames(),
					tt.wantRate, tt.wantChannels, tt.wantFrames)
			}
			if src.Closed {
				t.Error("Decode() closed the source")
			}
		})
	}
}

func TestDecode_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.NewSilentSource(8000, 1, 100)
	src.Err = boom

	if _, err := Decode(src, LoadOptions{}); !errors.Is(err, boom) {
		t.Errorf("Decode() error = %v, want %v", err, boom)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(nil, "loop.xyz", LoadOptions{}); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("LoadFile(.xyz) error = %v, want ErrUnknownFormat", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.wav")
	if _, err := LoadFile(nil, missing, LoadOptions{}); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want fs.ErrNotExist", err)
	}
}
