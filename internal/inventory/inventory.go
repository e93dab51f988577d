package inventory

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/java"
	"github.com/thoreinstein/javafind/internal/logging"
)

// Format names an inventory encoding.
type Format string

// Supported formats.
const (
	FormatTable     Format = "table"
	FormatJSON      Format = "json"
	FormatYAML      Format = "yaml"
	FormatTOML      Format = "toml"
	FormatCycloneDX Format = "cyclonedx"
)

var formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatTOML, FormatCycloneDX}

// Formats returns the supported format names.
func Formats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// ParseFormat validates a format name. The empty string selects the table.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatTable, nil
	}
	f := Format(strings.ToLower(s))
	if !slices.Contains(formats, f) {
		return "", errors.Wrapf(errors.ErrInvalidFormat, "%q (want one of %s)", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// PropertyPathname is the CycloneDX property carrying a runtime's launcher path.
const PropertyPathname = "javafind:pathname"

const emptyMessage = "(no Java runtimes found)"

// document is the top-level shape of the YAML and TOML encodings.
type document struct {
	Runtimes []java.DetectedRuntime `json:"runtimes" yaml:"runtimes" toml:"runtimes"`
}

// Encoder writes inventories.
type Encoder struct {
	// Color enables colored table output.
	Color bool

	// ToolVersion is recorded in CycloneDX metadata.
	ToolVersion string

	// Now stamps CycloneDX metadata; time.Now when nil.
	Now func() time.Time
}

// Encode writes runtimes to w in format, coloring tables when w is a terminal.
func Encode(w io.Writer, format Format, runtimes []java.DetectedRuntime) error {
	return Encoder{Color: logging.SupportsColor(w)}.Encode(w, format, runtimes)
}

// Encode writes runtimes to w in format.
func (e Encoder) Encode(w io.Writer, format Format, runtimes []java.DetectedRuntime) error {
	if runtimes == nil {
		runtimes = []java.DetectedRuntime{}
	}

	switch format {
	case FormatTable, "":
		return e.table(w, runtimes)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(runtimes), "encoding json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Runtimes: runtimes}); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(document{Runtimes: runtimes}), "encoding toml")
	case FormatCycloneDX:
		bom := e.BOM(runtimes)
		return errors.Wrap(cdx.NewBOMEncoder(w, cdx.BOMFileFormatJSON).SetPretty(true).Encode(&bom), "encoding cyclonedx")
	default:
		return errors.Wrapf(errors.ErrInvalidFormat, "%q", format)
	}
}

func (e Encoder) table(w io.Writer, runtimes []java.DetectedRuntime) error {
	if len(runtimes) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	vendor := fmt.Sprint
	if e.Color {
		c := color.New(color.FgCyan)
		c.EnableColor()
		vendor = c.Sprint
	}

	// The colored column is last so escape codes do not skew alignment.
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tVERSION\tVENDOR")
	for _, rt := range runtimes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rt.Pathname, rt.Version, vendor(rt.Vendor))
	}
	return tw.Flush()
}

// BOM returns the inventory as a CycloneDX 1.6 bill of materials with one
// platform component per runtime.
func (e Encoder) BOM(runtimes []java.DetectedRuntime) cdx.BOM {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	version := e.ToolVersion
	if version == "" {
		version = "dev"
	}

	// Arrays must not be null in the CycloneDX schema.
	components := make([]cdx.Component, 0, len(runtimes))
	for i, rt := range runtimes {
		props := []cdx.Property{{Name: PropertyPathname, Value: rt.Pathname}}
		components = append(components, cdx.Component{
			BOMRef:     fmt.Sprintf("javafind:runtime/%d", i+1),
			Type:       cdx.ComponentTypePlatform,
			Name:       "java",
			Version:    rt.Version,
			Publisher:  rt.Vendor,
			Properties: &props,
		})
	}

	return cdx.BOM{
		JSONSchema:   "https://cyclonedx.org/schema/bom-1.6.schema.json",
		BOMFormat:    "CycloneDX",
		SpecVersion:  cdx.SpecVersion1_6,
		SerialNumber: "urn:uuid:" + uuid.NewString(),
		Version:      1,
		Metadata: &cdx.Metadata{
			Timestamp: now().UTC().Format(time.RFC3339),
			Component: &cdx.Component{
				Type:    cdx.ComponentTypeApplication,
				Name:    "javafind",
				Version: version,
			},
		},
		Components: &components,
	}
}
