// Package pointset loads integer point sets for the geometry package from
// YAML documents or judge-style token streams.
package pointset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"polar/src/geometry"
)

// ErrFormat is returned for malformed input.
var ErrFormat = errors.New("malformed point set")

// Format selects how input is decoded.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatYAML   Format = "yaml"
	FormatTokens Format = "tokens"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatYAML, FormatTokens:
		return f, nil
	case "":
		return FormatAuto, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Pair names two points of a Set by index.
type Pair [2]int

// Set is a decoded point set.
type Set struct {
	Coords []geometry.Coord `yaml:"points"`
	Angles []Pair           `yaml:"angles"`
}

// Points returns the set as radius vectors, rejecting coordinates outside
// geometry.MaxCoordinate.
func (s *Set) Points() ([]geometry.Point, error) {
	out := make([]geometry.Point, len(s.Coords))
	for i, c := range s.Coords {
		p, err := geometry.NewPointChecked(c.X, c.Y)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// Loader decodes point sets. The zero value is usable and discards log
// output.
type Loader struct {
	Logger logrus.FieldLogger
	Format Format
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Logger == nil {
		lg := logrus.New()
		lg.SetOutput(io.Discard)
		return lg
	}
	return l.Logger
}

// Load reads a point set from a file. With FormatAuto, .yaml and .yml files
// are decoded as YAML and everything else as tokens.
func (l *Loader) Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading point set: %w", err)
	}

	format := l.Format
	if format == "" || format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatTokens
		}
	}
	l.logger().WithFields(logrus.Fields{"path": path, "format": format}).Debug("loading point set")
	return l.decode(bytes.NewReader(data), format)
}

// Read decodes a point set from r. FormatAuto is treated as FormatTokens.
func (l *Loader) Read(r io.Reader, format Format) (*Set, error) {
	if format == FormatAuto || format == "" {
		format = FormatTokens
	}
	return l.decode(r, format)
}

func (l *Loader) decode(r io.Reader, format Format) (*Set, error) {
	var (
		set *Set
		err error
	)
	switch format {
	case FormatYAML:
		set, err = decodeYAML(r)
	case FormatTokens:
		set, err = decodeTokens(r)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	l.logger().WithFields(logrus.Fields{
		"points": len(set.Coords),
		"angles": len(set.Angles),
	}).Debug("point set loaded")
	return set, nil
}

func decodeYAML(r io.Reader) (*Set, error) {
	var set Set
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: parsing YAML: %v", ErrFormat, err)
	}
	return &set, nil
}

// decodeTokens reads N, N coordinate pairs, then optionally M and M index
// pairs.
func decodeTokens(r io.Reader) (*Set, error) {
	tr := NewTokenReader(r)
	n, err := tr.Int64()
	if err == io.EOF {
		return &Set{}, nil
	}
	if err != nil {
		return nil, err
	}
	if n < 0 || n > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: point count %d out of range", ErrFormat, n)
	}
	xy, err := tr.Int64s(int(2 * n))
	if err != nil {
		return nil, err
	}
	set := &Set{Coords: make([]geometry.Coord, n)}
	for i := range set.Coords {
		set.Coords[i] = geometry.Coord{X: xy[2*i], Y: xy[2*i+1]}
	}

	m, err := tr.Int64()
	if err == io.EOF {
		return set, nil
	}
	if err != nil {
		return nil, err
	}
	if m < 0 || m > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: angle count %d out of range", ErrFormat, m)
	}
	idx, err := tr.Int64s(int(2 * m))
	if err != nil {
		return nil, err
	}
	set.Angles = make([]Pair, m)
	for i := range set.Angles {
		set.Angles[i] = Pair{int(idx[2*i]), int(idx[2*i+1])}
	}
	if _, err := tr.Next(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing input after %d angles", ErrFormat, m)
	}
	return set, nil
}

func (s *Set) validate() error {
	for i, a := range s.Angles {
		for _, idx := range a {
			if idx < 0 || idx >= len(s.Coords) {
				return fmt.Errorf("%w: angle %d refers to point %d of %d", ErrFormat, i, idx, len(s.Coords))
			}
		}
	}
	return nil
}

// Directions returns the points of the set that have a direction. The origin
// compares equal to every point under geometry.Point.Cmp, so it is dropped
// and logged instead of being sorted.
func (l *Loader) Directions(s *Set) ([]geometry.Point, error) {
	points, err := s.Points()
	if err != nil {
		return nil, err
	}
	out := points[:0]
	for i, p := range points {
		if p.IsOrigin() {
			l.logger().WithField("index", i).Warn("dropping origin point: it has no direction")
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
