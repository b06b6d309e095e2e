package adapter

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerCarriesSession(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "debug", "abc-123")
	logger.Debug("hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, `"session":"abc-123"`) {
		t.Errorf("log line missing session attribute: %s", out)
	}
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("log line missing message: %s", out)
	}
}

func TestSetupLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dailyart.log")
	logger, err := SetupLogger(&LoggingConfig{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	logger.Info("started")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("log file = %q, want the record", data)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Acquisition.SampleSize != 20 || cfg.Acquisition.MaxDraws != 10 {
		t.Errorf("retry budgets = %d/%d, want 20/10", cfg.Acquisition.SampleSize, cfg.Acquisition.MaxDraws)
	}
	if cfg.Recommend.Limit != 12 {
		t.Errorf("recommend limit = %d, want 12", cfg.Recommend.Limit)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"source type", func(c *Config) { c.Source.Type = "louvre" }},
		{"source url", func(c *Config) { c.Source.URL = "" }},
		{"sample size", func(c *Config) { c.Acquisition.SampleSize = 0 }},
		{"max draws", func(c *Config) { c.Acquisition.MaxDraws = -1 }},
		{"prefetch window", func(c *Config) { c.Acquisition.PrefetchWindow = 0 }},
		{"recommend limit", func(c *Config) { c.Recommend.Limit = 0 }},
		{"recommend limit above cap", func(c *Config) { c.Recommend.Limit = 50 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Source.URL != DefaultConfig().Source.URL {
		t.Errorf("source url = %q, want default", cfg.Source.URL)
	}
}

func TestSaveThenLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Source.URL = "http://localhost:9999/v1"
	cfg.Source.Timeout = 5 * time.Second
	cfg.Acquisition.MaxDraws = 4
	cfg.Viewer.Command = "firefox"
	cfg.Viewer.Args = []string{"--new-tab"}
	cfg.Storage.Path = filepath.Join(dir, "data")

	if err := saveConfig(viper.New(), cfg, dir); err != nil {
		t.Fatalf("saveConfig: %v", err)
	}

	got, err := loadConfig(viper.New(), dir)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got.Source.URL != cfg.Source.URL {
		t.Errorf("url = %q, want %q", got.Source.URL, cfg.Source.URL)
	}
	if got.Source.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", got.Source.Timeout)
	}
	if got.Acquisition.MaxDraws != 4 {
		t.Errorf("max draws = %d, want 4", got.Acquisition.MaxDraws)
	}
	if got.Viewer.Command != "firefox" || !reflect.DeepEqual(got.Viewer.Args, []string{"--new-tab"}) {
		t.Errorf("viewer = %q %v", got.Viewer.Command, got.Viewer.Args)
	}
}

func TestClearData(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "data")
	if err := os.MkdirAll(filepath.Join(cfg.Storage.Path, "abc123"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Storage.Path, "abc123", "dailyart.db"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := ClearData(cfg); err != nil {
		t.Fatalf("ClearData: %v", err)
	}
	if _, err := os.Stat(cfg.Storage.Path); !os.IsNotExist(err) {
		t.Errorf("storage path still exists: %v", err)
	}

	// Clearing again and memory-only mode are no-ops
	if err := ClearData(cfg); err != nil {
		t.Errorf("second ClearData: %v", err)
	}
	cfg.Storage.Path = ""
	if err := ClearData(cfg); err != nil {
		t.Errorf("ClearData without path: %v", err)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DAILYART_SOURCE_URL", "http://env.example/v1")
	t.Setenv("DAILYART_RECOMMEND_LIMIT", "5")

	cfg, err := loadConfig(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Source.URL != "http://env.example/v1" {
		t.Errorf("url = %q, want env override", cfg.Source.URL)
	}
	if cfg.Recommend.Limit != 5 {
		t.Errorf("limit = %d, want 5", cfg.Recommend.Limit)
	}
}

func TestLauncherCommandFor(t *testing.T) {
	const url = "https://www.metmuseum.org/art/collection/search/436532"

	tests := []struct {
		name     string
		command  string
		args     []string
		goos     string
		wantName string
		wantArgs []string
	}{
		{"configured", "firefox", []string{"--new-tab"}, "linux", "firefox", []string{"--new-tab", url}},
		{"darwin default", "", nil, "darwin", "open", []string{url}},
		{"linux default", "", nil, "linux", "xdg-open", []string{url}},
		{"windows default", "", nil, "windows", "rundll32", []string{"url.dll,FileProtocolHandler", url}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLauncher(tt.command, tt.args, NullLogger())
			name, args := l.commandFor(url, tt.goos)
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("commandFor = %q %v, want %q %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestLauncherOpen(t *testing.T) {
	l := NewLauncher("viewer", nil, NullLogger())
	var gotName string
	var gotArgs []string
	l.start = func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	if err := l.Open("https://example.org/a.jpg"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if gotName != "viewer" || !reflect.DeepEqual(gotArgs, []string{"https://example.org/a.jpg"}) {
		t.Errorf("started %q %v", gotName, gotArgs)
	}

	if err := l.Open(""); !errors.Is(err, ErrNoURL) {
		t.Errorf("Open(\"\") = %v, want ErrNoURL", err)
	}
}
