package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/pkg/fileutil"
)

// ConfigSyntaxCheck validates the syntax of the config file in use.
type ConfigSyntaxCheck struct {
	path string
}

var _ Check = (*ConfigSyntaxCheck)(nil)

// NewConfigSyntaxCheck creates a syntax check for path. An empty path means
// no config file was found.
func NewConfigSyntaxCheck(path string) *ConfigSyntaxCheck {
	return &ConfigSyntaxCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigSyntaxCheck) Name() string {
	return "config-syntax"
}

// Category returns the grouping for this check.
func (c *ConfigSyntaxCheck) Category() string {
	return "config"
}

// Run parses the config file according to its extension.
func (c *ConfigSyntaxCheck) Run(_ context.Context) *CheckResult {
	result := newResult(c)

	if c.path == "" {
		result.Status = SeverityInfo
		result.Message = "no config file in use; defaults apply"
		return result
	}
	result.Details["path"] = c.path

	data, err := fileutil.ReadFileWithLimit(c.path, fileutil.MaxConfigSize)
	switch {
	case errors.Is(err, os.ErrNotExist):
		result.Status = SeverityInfo
		result.Message = "config file does not exist"
		return result
	case err != nil:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("read error: %v", err)
		return result
	}

	if msg := validateSyntax(c.path, data); msg != "" {
		result.Status = SeverityError
		result.Message = msg
		result.FixHint = "fix the syntax in " + c.path
		return result
	}

	result.Status = SeverityPass
	result.Message = "config file parsed successfully"
	return result
}

// validateSyntax returns a positioned error message, or "" when data parses.
func validateSyntax(path string, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var v any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &v); err != nil {
			return formatJSONError(err, data)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &v); err != nil {
			return formatTOMLError(err)
		}
	default:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Sprintf("YAML error: %v", err)
		}
	}
	return ""
}

// formatJSONError extracts position information from JSON syntax errors.
func formatJSONError(err error, data []byte) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Sprintf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(data, int(typeErr.Offset))
		return fmt.Sprintf("JSON type error at line %d, column %d: %s", line, col, typeErr.Error())
	}

	return fmt.Sprintf("JSON error: %v", err)
}

// formatTOMLError extracts position information from TOML decode errors.
func formatTOMLError(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("TOML syntax error at line %d, column %d: %s", row, col, decodeErr.Error())
	}

	return fmt.Sprintf("TOML error: %v", err)
}

// offsetToLineCol converts a byte offset to 1-indexed line and column numbers.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	offset = min(max(offset, 0), len(data))

	line = 1
	lineStart := 0
	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return line, offset - lineStart + 1
}

// ConfigValuesCheck reports the outcome of loading and validating config.
type ConfigValuesCheck struct {
	err error
}

var _ Check = (*ConfigValuesCheck)(nil)

// NewConfigValuesCheck wraps the error returned by config.Load.
func NewConfigValuesCheck(loadErr error) *ConfigValuesCheck {
	return &ConfigValuesCheck{err: loadErr}
}

// Name returns the unique identifier for this check.
func (c *ConfigValuesCheck) Name() string {
	return "config-values"
}

// Category returns the grouping for this check.
func (c *ConfigValuesCheck) Category() string {
	return "config"
}

// Run reports each invalid setting.
func (c *ConfigValuesCheck) Run(_ context.Context) *CheckResult {
	result := newResult(c)

	if c.err == nil {
		result.Status = SeverityPass
		result.Message = "configuration values are valid"
		return result
	}

	lines := strings.Split(c.err.Error(), "\n")
	result.Status = SeverityError
	result.Message = lines[0]
	result.FixHint = "edit the config file or JAVAFIND_* environment variables"
	if errors.Is(c.err, errors.ErrInvalidConfig) {
		result.Details["problems"] = lines
	}
	return result
}
