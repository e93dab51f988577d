package doctor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/javafind/internal/errors"
)

func TestConfigSyntaxCheck_Identity(t *testing.T) {
	c := NewConfigSyntaxCheck("")
	if got := c.Name(); got != "config-syntax" {
		t.Errorf("Name() = %q, want %q", got, "config-syntax")
	}
	if got := c.Category(); got != "config" {
		t.Errorf("Category() = %q, want %q", got, "config")
	}
}

func TestConfigSyntaxCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		content    string
		wantStatus Severity
		wantInMsg  string
	}{
		{
			name:       "valid YAML",
			filename:   "config.yaml",
			content:    "version: 1\nprobe_timeout: 5s\nsearch:\n  extra_dirs: [/opt/jvms]\n",
			wantStatus: SeverityPass,
		},
		{
			name:       "invalid YAML",
			filename:   "config.yml",
			content:    "search:\n  extra_dirs: [/opt/jvms\n",
			wantStatus: SeverityError,
			wantInMsg:  "YAML error",
		},
		{
			name:       "valid TOML",
			filename:   "config.toml",
			content:    "version = 1\n[search]\nextra_dirs = [\"/opt/jvms\"]\n",
			wantStatus: SeverityPass,
		},
		{
			name:       "invalid TOML - missing value",
			filename:   "config.toml",
			content:    "[search]\nplatform = ",
			wantStatus: SeverityError,
			wantInMsg:  "TOML syntax error at line 2",
		},
		{
			name:       "valid JSON",
			filename:   "config.json",
			content:    `{"version": 1, "concurrency": 4}`,
			wantStatus: SeverityPass,
		},
		{
			name:       "invalid JSON - trailing comma",
			filename:   "config.json",
			content:    "{\n  \"version\": 1,\n}",
			wantStatus: SeverityError,
			wantInMsg:  "JSON syntax error at line 3",
		},
		{
			name:       "empty file",
			filename:   "config.json",
			content:    "",
			wantStatus: SeverityPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			result := NewConfigSyntaxCheck(path).Run(t.Context())

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%s)", result.Status, tt.wantStatus, result.Message)
			}
			if !strings.Contains(result.Message, tt.wantInMsg) {
				t.Errorf("Message = %q, want it to contain %q", result.Message, tt.wantInMsg)
			}
			if result.Details["path"] != path {
				t.Errorf("Details[path] = %v, want %q", result.Details["path"], path)
			}
		})
	}
}

func TestConfigSyntaxCheck_NoFile(t *testing.T) {
	if got := NewConfigSyntaxCheck("").Run(t.Context()); got.Status != SeverityInfo {
		t.Errorf("empty path Status = %v, want info", got.Status)
	}

	missing := filepath.Join(t.TempDir(), "config.yaml")
	if got := NewConfigSyntaxCheck(missing).Run(t.Context()); got.Status != SeverityInfo {
		t.Errorf("missing file Status = %v, want info", got.Status)
	}
}

func TestFormatJSONError(t *testing.T) {
	data := []byte("{\n  \"a\": 1\n  \"b\": 2\n}")
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		t.Fatal("expected JSON error")
	}

	got := formatJSONError(err, data)
	if !strings.HasPrefix(got, "JSON syntax error at line 3, column") {
		t.Errorf("formatJSONError() = %q", got)
	}

	var n int
	err = json.Unmarshal([]byte(`"text"`), &n)
	if got := formatJSONError(err, []byte(`"text"`)); !strings.HasPrefix(got, "JSON type error at line 1") {
		t.Errorf("formatJSONError(type) = %q", got)
	}
}

func TestFormatTOMLError(t *testing.T) {
	var v any
	err := toml.Unmarshal([]byte("a = 1\nb = \n"), &v)
	if err == nil {
		t.Fatal("expected TOML error")
	}
	if got := formatTOMLError(err); !strings.HasPrefix(got, "TOML syntax error at line 2") {
		t.Errorf("formatTOMLError() = %q", got)
	}

	if got := formatTOMLError(errors.New("boom")); got != "TOML error: boom" {
		t.Errorf("formatTOMLError(plain) = %q", got)
	}
}

func TestOffsetToLineCol(t *testing.T) {
	data := []byte("ab\ncd\nef")
	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{7, 3, 2},
		{-5, 1, 1},
		{100, 3, 3},
	}

	for _, tt := range tests {
		line, col := offsetToLineCol(data, tt.offset)
		if line != tt.wantLine || col != tt.wantCol {
			t.Errorf("offsetToLineCol(%d) = (%d, %d), want (%d, %d)", tt.offset, line, col, tt.wantLine, tt.wantCol)
		}
	}
}

func TestConfigValuesCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		result := NewConfigValuesCheck(nil).Run(t.Context())
		if result.Status != SeverityPass {
			t.Errorf("Status = %v, want pass", result.Status)
		}
		if result.Name != "config-values" {
			t.Errorf("Name = %q", result.Name)
		}
	})

	t.Run("validation problems listed", func(t *testing.T) {
		loadErr := errors.Mark(
			errors.Wrap(errors.Join(errors.New("concurrency: must be at least 1"), errors.New("probe_timeout: must not be negative")), "validating config"),
			errors.ErrInvalidConfig,
		)

		result := NewConfigValuesCheck(loadErr).Run(t.Context())

		if result.Status != SeverityError {
			t.Fatalf("Status = %v, want error", result.Status)
		}
		problems, ok := result.Details["problems"].([]string)
		if !ok || len(problems) != 2 {
			t.Fatalf("problems = %#v, want 2 entries", result.Details["problems"])
		}
		if !strings.HasPrefix(result.Message, "validating config: ") {
			t.Errorf("Message = %q", result.Message)
		}
	})

	t.Run("load failure has no problem list", func(t *testing.T) {
		result := NewConfigValuesCheck(errors.New("reading config file: permission denied")).Run(t.Context())
		if result.Status != SeverityError {
			t.Errorf("Status = %v, want error", result.Status)
		}
		if _, ok := result.Details["problems"]; ok {
			t.Errorf("Details = %v, want no problem list", result.Details)
		}
	})
}
