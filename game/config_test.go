package game

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"Terminal frontend", func(c *Config) { c.Frontend = FrontendTerminal }, false},
		{"Zero cell size", func(c *Config) { c.CellSize = 0 }, true},
		{"Negative width", func(c *Config) { c.ScreenWidth = -640 }, true},
		{"Misaligned height", func(c *Config) { c.ScreenHeight = 470 }, true},
		{"Zero tick rate", func(c *Config) { c.TicksPerSecond = 0 }, true},
		{"Unknown frontend", func(c *Config) { c.Frontend = "browser" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDerived(t *testing.T) {
	cfg := DefaultConfig()

	g := cfg.Grid()
	if g.Columns() != 32 || g.Rows() != 24 {
		t.Errorf("Expected a 32x24 grid, got %dx%d", g.Columns(), g.Rows())
	}
	if got := cfg.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("Expected 100ms ticks, got %v", got)
	}
}
