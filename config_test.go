package pixels

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Title != "pixels" {
		t.Errorf("Title = %q, want %q", cfg.Title, "pixels")
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.Resize != ResizeKeepLogical {
		t.Errorf("Resize = %v, want ResizeKeepLogical", cfg.Resize)
	}
	if cfg.Fullscreen || cfg.HighDPI {
		t.Error("Fullscreen or HighDPI set by default")
	}
	if cfg.Icon != nil || cfg.Backend != "" {
		t.Error("Icon or Backend set by default")
	}
}

func TestConfigBuilderChaining(t *testing.T) {
	icon := &Icon{}
	cfg := DefaultConfig().
		WithTitle("invaders").
		WithSize(320, 240).
		WithFullscreen(true).
		WithHighDPI(true).
		WithResizeMode(ResizeToWindow).
		WithIcon(icon).
		WithBackend("headless")

	if cfg.Title != "invaders" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
	if !cfg.Fullscreen || !cfg.HighDPI {
		t.Error("Fullscreen/HighDPI not set")
	}
	if cfg.Resize != ResizeToWindow {
		t.Errorf("Resize = %v, want ResizeToWindow", cfg.Resize)
	}
	if cfg.Icon != icon {
		t.Error("Icon not set")
	}
	if cfg.Backend != "headless" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "headless")
	}
}

func TestConfigBuilderDoesNotMutateReceiver(t *testing.T) {
	base := DefaultConfig()
	_ = base.WithTitle("other").WithSize(1, 1)
	if base.Title != "pixels" || base.Width != 640 {
		t.Errorf("builder mutated receiver: %+v", base)
	}
}
