package cli

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/fcactx/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "fcactx", "config.toml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        Config
		wantUnknown []string
	}{
		{
			name:    "empty file",
			content: "",
			want:    Config{DefaultFormat: "burmeister"},
		},
		{
			name:    "all keys",
			content: "default_format = \"json\"\nverbose = true\n",
			want:    Config{DefaultFormat: "json", Verbose: true},
		},
		{
			name:    "blank format keeps default",
			content: "default_format = \"  \"\n",
			want:    Config{DefaultFormat: "burmeister"},
		},
		{
			name:        "unknown keys",
			content:     "verbose = true\ncolour = \"blue\"\n",
			want:        Config{DefaultFormat: "burmeister", Verbose: true},
			wantUnknown: []string{"colour"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unknown, err := loadConfig(writeConfig(t, tt.content), true)
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("loadConfig() = %+v, want %+v", got, tt.want)
			}
			if !slices.Equal(unknown, tt.wantUnknown) {
				t.Errorf("unknown keys = %v, want %v", unknown, tt.wantUnknown)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	got, _, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("loadConfig() error = %v, want defaults", err)
	}
	if got != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", got)
	}

	if _, _, err := loadConfig(path, true); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("loadConfig(explicit) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	_, _, err := loadConfig(writeConfig(t, "default_format = \n"), false)
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("loadConfig() error = %v, want %s", err, errors.ErrCodeMalformedInput)
	}
}
