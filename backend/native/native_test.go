package native

import (
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/pixels"
)

type fillState struct {
	color  pixels.Color
	frames int
	check  func(ctx *pixels.Context)
}

func (s *fillState) Update(ctx *pixels.Context) {
	s.frames++
	if s.check != nil {
		s.check(ctx)
	}
}

func (s *fillState) Draw(ctx *pixels.Context) {
	ctx.SetClearColor(s.color)
	ctx.Clear()
}

func TestHostRegistered(t *testing.T) {
	if !slices.Contains(pixels.AvailableHosts(), Name) {
		t.Fatalf("AvailableHosts() = %v, want to contain %q", pixels.AvailableHosts(), Name)
	}
}

func TestHostName(t *testing.T) {
	if got := New().Name(); got != Name {
		t.Errorf("Name() = %q, want %q", got, Name)
	}
}

func TestSnapshotNotRunning(t *testing.T) {
	host := New()
	if _, _, _, err := host.Snapshot(); err == nil {
		t.Error("Snapshot() on idle host succeeded, want error")
	}
}

// TestRunRoundTrip renders a solid color and reads it back from the
// GPU target. Requires a working GPU; skipped otherwise.
func TestRunRoundTrip(t *testing.T) {
	host := New()
	host.MaxFrames = 2

	var snap []uint8
	var snapErr error
	state := &fillState{color: pixels.RGBA(64, 128, 192, 255)}
	state.check = func(ctx *pixels.Context) {
		if state.frames == 2 {
			snap, _, _, snapErr = host.Snapshot()
		}
	}

	cfg := pixels.DefaultConfig().WithSize(8, 8)
	err := pixels.RunOn(host, cfg, state)
	if err != nil {
		if strings.Contains(err.Error(), "GPU init failed") {
			t.Skipf("Skipping: %v", err)
		}
		t.Fatalf("RunOn() error = %v", err)
	}
	if snapErr != nil {
		t.Fatalf("Snapshot() error = %v", snapErr)
	}
	if len(snap) != 8*8*4 {
		t.Fatalf("snapshot len = %d, want %d", len(snap), 8*8*4)
	}
	if snap[0] != 64 || snap[1] != 128 || snap[2] != 192 || snap[3] != 255 {
		t.Errorf("first pixel = %v, want [64 128 192 255]", snap[:4])
	}
}
