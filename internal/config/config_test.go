package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/samdwyer/rogue/internal/fov"
	"github.com/samdwyer/rogue/internal/world"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.GenParams() != world.DefaultGenParams() {
		t.Errorf("GenParams = %+v, want %+v", cfg.GenParams(), world.DefaultGenParams())
	}
	if cfg.MaxRoomMonsters != 5 || cfg.TorchRadius != 10 || !cfg.FOVLightWalls {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Seed != 0 || cfg.LogFile != "rogue.log" || cfg.MetricsAddr != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"ROGUE_SEED":              "42",
		"ROGUE_MAP_WIDTH":         "60",
		"ROGUE_MAX_ROOM_MONSTERS": "0",
		"ROGUE_FOV_ALGORITHM":     "shadow",
		"ROGUE_FOV_LIGHT_WALLS":   "false",
		"ROGUE_LOG_LEVEL":         "DEBUG",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	g := cfg.Game()
	if g.Seed != 42 || g.Gen.Width != 60 || g.MaxRoomMonsters != 0 {
		t.Errorf("unexpected game config: %+v", g)
	}
	if g.FOVAlgorithm != fov.AlgorithmShadow || g.FOVLightWalls {
		t.Errorf("unexpected fov settings: %+v", g)
	}
	if cfg.LogLevel.Slog() != slog.LevelDebug {
		t.Errorf("LogLevel.Slog() = %v, want debug", cfg.LogLevel.Slog())
	}
}

func TestLoadFromProcessEnv(t *testing.T) {
	t.Setenv("ROGUE_TORCH_RADIUS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TorchRadius != 3 {
		t.Errorf("TorchRadius = %d, want 3", cfg.TorchRadius)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	_, err := LoadFrom(map[string]string{
		"ROGUE_ROOM_MIN_SIZE":     "12",
		"ROGUE_ROOM_MAX_SIZE":     "4",
		"ROGUE_MAX_ROOM_MONSTERS": "-1",
		"ROGUE_FOV_ALGORITHM":     "psychic",
		"ROGUE_LOG_LEVEL":         "loud",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"min size", "monsters", "psychic", "loud"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestParseErrorIsWrapped(t *testing.T) {
	_, err := LoadFrom(map[string]string{"ROGUE_SEED": "not-a-number"})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse env") {
		t.Errorf("error should be wrapped with parse env, got: %v", err)
	}
}

func TestLogLevelSlog(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  slog.Level
	}{
		{LogDebug, slog.LevelDebug},
		{LogInfo, slog.LevelInfo},
		{LogWarn, slog.LevelWarn},
		{LogError, slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := tt.level.Slog(); got != tt.want {
			t.Errorf("LogLevel(%q).Slog() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMaxRoomsBoundedByMapArea(t *testing.T) {
	_, err := LoadFrom(map[string]string{"ROGUE_MAX_ROOMS": "1099511627776"})
	if err == nil {
		t.Fatal("expected max rooms above the map area to be rejected")
	}
	if !strings.Contains(err.Error(), "map area") {
		t.Errorf("error should mention the map area, got: %v", err)
	}

	if _, err := LoadFrom(map[string]string{"ROGUE_MAX_ROOMS": "3600"}); err != nil {
		t.Errorf("max rooms equal to 80x45 should be accepted: %v", err)
	}
}
