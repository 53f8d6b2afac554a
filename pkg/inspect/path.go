// Package inspect walks, reads and edits data-model object trees.
//
// The inspect package offers a unified interface for:
//   - Parsing CWMP path expressions (e.g. "Device.DNS.Client.Server.2.Alias")
//   - Walking and flattening object trees into name/value/type triples
//   - Reading and writing parameters by path with access control
//   - Filling objects with in-bounds sample values
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
)

// Path represents a parsed CWMP path.
type Path struct {
	// Segments are the dot-separated names and instance numbers.
	Segments []string

	// Partial is set for paths ending in a dot, which name an object
	// rather than a parameter.
	Partial bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a dotted path such as "Device.DNS.Client.Server.1.Alias"
// or the partial path "Device.DNS.Client.".
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	if strings.HasPrefix(input, ".") || strings.Contains(input, "..") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, input)
	}

	p := &Path{
		Raw:      input,
		Partial:  strings.HasSuffix(input, "."),
		Segments: model.Segments(input),
	}
	for _, s := range p.Segments {
		if !validSegment(s) {
			return nil, fmt.Errorf("%w: bad segment %q in %s", ErrInvalidPath, s, input)
		}
	}
	return p, nil
}

// String returns the path in dotted form.
func (p *Path) String() string {
	s := strings.Join(p.Segments, ".")
	if p.Partial {
		s += "."
	}
	return s
}

// TrimPrefix removes the leading segments of prefix from p and reports
// whether p started with them.
func (p *Path) TrimPrefix(prefix string) ([]string, bool) {
	pre := model.Segments(prefix)
	if len(pre) > len(p.Segments) {
		return nil, false
	}
	for i, s := range pre {
		if p.Segments[i] != s {
			return nil, false
		}
	}
	return p.Segments[len(pre):], true
}

// validSegment accepts names (letter first, then letters, digits, '-' or
// '_'), instance numbers and the {i} placeholder.
func validSegment(s string) bool {
	if s == model.Placeholder {
		return true
	}
	if s == "" {
		return false
	}
	if isDigits(s) {
		return true
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_'):
		default:
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
