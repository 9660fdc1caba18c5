// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/slicewave/audio"
	"github.com/ik5/slicewave/formats/wav"
	"github.com/ik5/slicewave/samplebuf"
)

const (
	testRate   = 8000
	testFrames = 4000
)

// writeSteps writes a mono WAV of four equal steps at 0.1, 0.2, 0.3, 0.4.
func writeSteps(t *testing.T) string {
	t.Helper()

	data := make([]float32, testFrames)
	for i := range data {
		data[i] = float32(i/(testFrames/4)+1) / 10
	}

	path := filepath.Join(t.TempDir(), "steps.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if err := wav.WriteFloat(f, testRate, 16, [][]float32{data}); err != nil {
		t.Fatalf("WriteFloat() error = %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInfo(t *testing.T) {
	t.Parallel()

	path := writeSteps(t)
	out, _, err := run(t, "info", path)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}

	want := "8000 Hz, 1 ch, 4000 frames, 500ms, peak 0.400"
	if !strings.Contains(out, want) {
		t.Errorf("info output = %q, want it to contain %q", out, want)
	}
}

func TestInfo_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "info", "loop.flac")
	if !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("info error = %v, want ErrUnknownFormat", err)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	path := writeSteps(t)
	outPath := filepath.Join(t.TempDir(), "wave.png")

	if _, _, err := run(t, "render", path, "-o", outPath, "-n", "2", "--zoom", "2", "--select", "1"); err != nil {
		t.Fatalf("render error = %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	// 0.5 s at 200 px/s, doubled by the zoom; default scene height.
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 178 {
		t.Errorf("image is %v, want 200x178", img.Bounds())
	}
}

func TestDrag_ReordersAndExports(t *testing.T) {
	t.Parallel()

	path := writeSteps(t)
	exportPath := filepath.Join(t.TempDir(), "reordered.wav")

	out, logs, err := run(t, "drag", path, "--from", "0", "--to", "60", "--export", exportPath, "--verbose")
	if err != nil {
		t.Fatalf("drag error = %v", err)
	}
	if !strings.Contains(out, "order: [1 2 0 3]") {
		t.Errorf("drag output = %q, want order [1 2 0 3]", out)
	}
	if !strings.Contains(logs, "order committed") {
		t.Errorf("logs missing the commit:\n%s", logs)
	}

	f, err := os.Open(exportPath)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	buf, err := samplebuf.Load(src, 0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ch := buf.Channel(0)
	for i, want := range []float64{0.2, 0.3, 0.1, 0.4} {
		got := float64(ch[i*testFrames/4+10])
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("slice %d level = %g, want %g", i, got, want)
		}
	}
}

func TestDrag_GroupWithThrough(t *testing.T) {
	t.Parallel()

	path := writeSteps(t)
	out, _, err := run(t, "drag", path, "--from", "2", "--through", "3", "--to", "0")
	if err != nil {
		t.Fatalf("drag error = %v", err)
	}
	if !strings.Contains(out, "order: [2 3 0 1]") {
		t.Errorf("drag output = %q, want order [2 3 0 1]", out)
	}
}

func TestDrag_Invalid(t *testing.T) {
	t.Parallel()

	path := writeSteps(t)

	for _, args := range [][]string{
		{"drag", path, "--from", "9"},
		{"drag", path, "--through", "7"},
		{"drag", path, "--step", "0"},
	} {
		if _, _, err := run(t, args...); !errors.Is(err, errBadDrag) {
			t.Errorf("%v: error = %v, want errBadDrag", args[2:], err)
		}
	}
}
