package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1980 {
		t.Errorf("expected width 1980, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1485 {
		t.Errorf("expected height 1485, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Backend != BackendSDL {
		t.Errorf("expected backend %q, got %q", BackendSDL, cfg.Graphics.Backend)
	}

	// Test viewer defaults
	if cfg.Viewer.Scene != "" {
		t.Errorf("expected built-in scene, got %s", cfg.Viewer.Scene)
	}
	if cfg.Viewer.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %s", cfg.Viewer.ScreenshotDir)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  title: "room"
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  backend: glfw

viewer:
  scene: "scenes/room.yaml"
  show_fps: true

logging:
  level: "debug"
  log_file: "viewer.log"
  max_backups: 9
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Title != "room" {
		t.Errorf("expected title room, got %s", cfg.Graphics.Title)
	}
	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.Backend != BackendGLFW {
		t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
	}
	if cfg.Viewer.Scene != "scenes/room.yaml" {
		t.Errorf("expected scene path, got %s", cfg.Viewer.Scene)
	}
	if !cfg.Viewer.ShowFPS {
		t.Error("expected show_fps to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBackups != 9 {
		t.Errorf("expected max_backups 9, got %d", cfg.Logging.MaxBackups)
	}
	// Untouched keys keep their defaults.
	if cfg.Logging.MaxSizeMB != 50 {
		t.Errorf("expected default max_size_mb 50, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"glfw backend", func(c *Config) { c.Graphics.Backend = BackendGLFW }, false},
		{"unknown backend", func(c *Config) { c.Graphics.Backend = "vulkan" }, true},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"fatal log level", func(c *Config) { c.Logging.Level = "fatal" }, true},
		{"debug log level", func(c *Config) { c.Logging.Level = "debug" }, false},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "config.yaml")
	user := filepath.Join(dir, "user", "config.yaml")
	paths := []string{local, user}

	if got := findConfigFile(paths); got != "" {
		t.Errorf("expected no config, got %s", got)
	}

	if err := os.MkdirAll(filepath.Dir(user), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(paths); got != user {
		t.Errorf("expected user config, got %s", got)
	}

	// A directory named config.yaml is not a config file.
	if err := os.Mkdir(local, 0755); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(paths); got != user {
		t.Errorf("expected directory to be skipped, got %s", got)
	}
}

func TestLoadFromFileStrict(t *testing.T) {
	dir := t.TempDir()

	typo := filepath.Join(dir, "typo.yaml")
	if err := os.WriteFile(typo, []byte("graphics:\n  widht: 800\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := loadFromFile(Default(), typo); err == nil {
		t.Error("expected error for unknown key")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, empty); err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if cfg.Graphics.Width != Default().Graphics.Width {
		t.Error("empty file should keep defaults")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Viewer.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = "other.yaml" },
			verify: func(cfg *Config) {
				if cfg.Viewer.Scene != "other.yaml" {
					t.Errorf("expected scene other.yaml, got %s", cfg.Viewer.Scene)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name:  "screenshot dir flag",
			setup: func() { *flagShots = "captures" },
			verify: func(cfg *Config) {
				if cfg.Viewer.ScreenshotDir != "captures" {
					t.Errorf("expected screenshot dir captures, got %s", cfg.Viewer.ScreenshotDir)
				}
			},
			teardown: func() { *flagShots = "" },
		},
		{
			name:  "title and backend flags",
			setup: func() { *flagTitle = "projekat"; *flagBackend = BackendGLFW },
			verify: func(cfg *Config) {
				if cfg.Graphics.Title != "projekat" {
					t.Errorf("expected title projekat, got %s", cfg.Graphics.Title)
				}
				if cfg.Graphics.Backend != BackendGLFW {
					t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
				}
			},
			teardown: func() { *flagTitle = ""; *flagBackend = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  backend: dx12\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for unknown backend")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Title = "saved"
	cfg.Viewer.Scene = "room.yaml"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Graphics.Title != "saved" || loaded.Viewer.Scene != "room.yaml" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestSaveToDefaultPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives the config dir on Linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	path, err := Default().Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(xdg, "roomview", "config.yaml"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
	if findConfigFile(searchPaths()) != path {
		t.Error("saved config should be found on the next start")
	}
}
