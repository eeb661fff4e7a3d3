package chord

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an encoding for persisted tasks.
type Format int

const (
	FormatJSON Format = iota + 1
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format named s, which is either "json" or "yaml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unknown task format %q", s)
	}
}

// FormatFromPath picks a format based on the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("can't determine task format of %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// FormatError describes invalid data in a persisted task.
type FormatError struct {
	// Field is the offending field, for example "circles[2].radius".
	Field string
	Msg   string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("invalid task: %s: %s", err.Field, err.Msg)
}

type pointDoc struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type circleDoc struct {
	Center pointDoc `json:"center" yaml:"center"`
	Radius float64  `json:"radius" yaml:"radius"`
}

type rectDoc struct {
	X0 float64 `json:"x0" yaml:"x0"`
	Y0 float64 `json:"y0" yaml:"y0"`
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
}

type taskDoc struct {
	Bounds  rectDoc     `json:"bounds" yaml:"bounds"`
	Circles []circleDoc `json:"circles" yaml:"circles"`
}

func (doc *taskDoc) task() (*Task, error) {
	b := Rect{doc.Bounds.X0, doc.Bounds.Y0, doc.Bounds.X1, doc.Bounds.Y1}
	if b.IsInf() || b.IsNaN() {
		return nil, &FormatError{"bounds", "coordinates must be finite"}
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		return nil, &FormatError{"bounds", fmt.Sprintf("%s has no positive extent", b)}
	}
	circles := make([]Circle, len(doc.Circles))
	for i, cd := range doc.Circles {
		c := Circle{Center: Pt(cd.Center.X, cd.Center.Y), Radius: cd.Radius}
		if c.IsInf() || c.IsNaN() {
			return nil, &FormatError{fmt.Sprintf("circles[%d]", i), "center and radius must be finite"}
		}
		if c.Radius <= 0 {
			return nil, &FormatError{fmt.Sprintf("circles[%d].radius", i), fmt.Sprintf("%g is not a positive number", c.Radius)}
		}
		circles[i] = c
	}
	return NewTask(b, circles), nil
}

// ReadTask decodes a task from r. Every circle must have a positive, finite
// radius and the bounds must have a positive width and height; violations are
// reported as [*FormatError].
func ReadTask(r io.Reader, f Format) (*Task, error) {
	var doc taskDoc
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("couldn't decode JSON task: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("couldn't decode YAML task: %w", err)
		}
	default:
		panic(fmt.Sprintf("unhandled case %v", f))
	}
	return doc.task()
}

// WriteTask encodes t to w. A solution is not persisted; the solved pair is
// written after the active circles, so that reading the task back yields the
// circles as they were before solving.
func WriteTask(w io.Writer, t *Task, f Format) error {
	b := t.Bounds()
	doc := taskDoc{
		Bounds: rectDoc{b.X0, b.Y0, b.X1, b.Y1},
	}
	circles := t.Circles()
	if sol, ok := t.Solution(); ok {
		circles = append(circles, sol.Circles[:]...)
	}
	doc.Circles = make([]circleDoc, len(circles))
	for i, c := range circles {
		doc.Circles[i] = circleDoc{
			Center: pointDoc{c.Center.X, c.Center.Y},
			Radius: c.Radius,
		}
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("couldn't encode JSON task: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("couldn't encode YAML task: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("couldn't encode YAML task: %w", err)
		}
	default:
		panic(fmt.Sprintf("unhandled case %v", f))
	}
	return nil
}
