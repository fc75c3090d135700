package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/abilitygraph/internal/ability"
	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/registry"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid report format %q: must be 'text' or 'yaml'", s)
	}
}

// Report is the serialisable outcome of one validation.
type Report struct {
	Valid       bool         `yaml:"valid"`
	State       string       `yaml:"state"`
	Size        int          `yaml:"size,omitempty"`
	Components  []Component  `yaml:"components,omitempty"`
	Diagnostics []Diagnostic `yaml:"diagnostics,omitempty"`
}

// Component is one committed component and its global index.
type Component struct {
	Index int    `yaml:"index"`
	Kind  string `yaml:"kind"`
	Name  string `yaml:"name"`
}

// Diagnostic is one validation error.
type Diagnostic struct {
	Code      int    `yaml:"code"`
	Category  string `yaml:"category"`
	Message   string `yaml:"message"`
	Source    string `yaml:"source,omitempty"`
	Reference string `yaml:"reference,omitempty"`
	Slot      *int   `yaml:"slot,omitempty"`
	Origin    string `yaml:"origin,omitempty"`
}

// OriginFunc maps an edge to where it was declared.
type OriginFunc func(*registry.Edge) string

// FromAbility reports a committed ability.
func FromAbility(a *ability.Ability) *Report {
	r := &Report{Valid: true, State: registry.Valid.String()}
	if a == nil {
		return r
	}
	r.Size = a.Size()
	for _, n := range a.Components() {
		r.Components = append(r.Components, Component{
			Index: n.SelfIndex(),
			Kind:  n.Kind().String(),
			Name:  n.Name(),
		})
	}
	return r
}

// FromDiagnostics reports a failed validation. origin may be nil.
func FromDiagnostics(state registry.State, diags []registry.Diagnostic, origin OriginFunc) *Report {
	r := &Report{Valid: false, State: state.String()}
	for _, d := range diags {
		entry := Diagnostic{
			Code:     int(d.Code),
			Category: d.Code.Category().String(),
			Message:  d.Code.String(),
		}
		if e := d.Edge; e != nil {
			if !component.IsNil(e.Source) {
				entry.Source = describe(e.Source)
			}
			if !component.IsNil(e.Reference) {
				entry.Reference = describe(e.Reference)
			}
			if e.MultipleRequireIndex != registry.Omitted {
				slot := e.MultipleRequireIndex
				entry.Slot = &slot
			}
			if origin != nil {
				entry.Origin = origin(e)
			}
		}
		r.Diagnostics = append(r.Diagnostics, entry)
	}
	return r
}

func describe(n component.Node) string {
	return n.Kind().String() + "." + n.Name()
}

// Write encodes the report to w.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return r.writeText(w)
	default:
		return fmt.Errorf("invalid report format %q", format)
	}
}

func (r *Report) writeText(w io.Writer) error {
	var b strings.Builder
	if r.Valid {
		fmt.Fprintf(&b, "ability is valid: %d component(s), %d index slot(s)\n", len(r.Components), r.Size)
		for _, c := range r.Components {
			fmt.Fprintf(&b, "  [%d] %s.%s\n", c.Index, c.Kind, c.Name)
		}
	} else {
		fmt.Fprintf(&b, "ability is invalid: %d diagnostic(s)\n", len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			fmt.Fprintf(&b, "  %d %s: %s", d.Code, d.Category, d.Message)
			if d.Source != "" {
				fmt.Fprintf(&b, " [%s", d.Source)
				if d.Reference != "" {
					fmt.Fprintf(&b, " -> %s", d.Reference)
				}
				if d.Slot != nil {
					fmt.Fprintf(&b, " slot %d", *d.Slot)
				}
				b.WriteString("]")
			}
			if d.Origin != "" {
				fmt.Fprintf(&b, " (%s)", d.Origin)
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
