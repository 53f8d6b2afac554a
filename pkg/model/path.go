package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder marks a multi-instance segment in a path template.
const Placeholder = "{i}"

// Path errors.
var (
	ErrPathMismatch = errors.New("path does not match template")
	ErrBadInstance  = errors.New("invalid instance number")
)

// Segments splits a dotted path. A trailing dot is ignored.
func Segments(path string) []string {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Join joins path segments with dots, skipping empty segments.
func Join(parts ...string) string {
	var out []string
	for _, p := range parts {
		p = strings.Trim(p, ".")
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ".")
}

// IsTableTemplate returns true if the template ends in a placeholder.
func IsTableTemplate(tmpl string) bool {
	return strings.HasSuffix(strings.TrimSuffix(tmpl, "."), "."+Placeholder)
}

// InstanceCount returns the number of placeholders in a template.
func InstanceCount(tmpl string) int {
	n := 0
	for _, s := range Segments(tmpl) {
		if s == Placeholder {
			n++
		}
	}
	return n
}

// Resolve substitutes indices for the template's placeholders from left
// to right. Placeholders without a matching index are left in place.
func Resolve(tmpl string, indices ...int) string {
	segs := Segments(tmpl)
	next := 0
	for i, s := range segs {
		if s != Placeholder {
			continue
		}
		if next >= len(indices) {
			break
		}
		segs[i] = strconv.Itoa(indices[next])
		next++
	}
	return strings.Join(segs, ".")
}

// IsResolved returns true if the path has no placeholders left.
func IsResolved(path string) bool {
	return !strings.Contains(path, Placeholder)
}

// TemplateOf replaces every numeric segment of a concrete path with a
// placeholder. Schema names never start with a digit.
func TemplateOf(path string) string {
	segs := Segments(path)
	for i, s := range segs {
		if isInstance(s) {
			segs[i] = Placeholder
		}
	}
	return strings.Join(segs, ".")
}

// Matches reports whether a concrete or partially resolved path fits the template.
func Matches(tmpl, path string) bool {
	_, err := Indices(tmpl, path)
	return err == nil
}

// Indices extracts the instance numbers of a concrete path against a
// template. Placeholders left unresolved in path are reported as 0.
func Indices(tmpl, path string) ([]int, error) {
	ts, ps := Segments(tmpl), Segments(path)
	if len(ts) != len(ps) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrPathMismatch, path, tmpl)
	}
	var out []int
	for i, t := range ts {
		p := ps[i]
		if t != Placeholder {
			if p != t {
				return nil, fmt.Errorf("%w: %s vs %s", ErrPathMismatch, path, tmpl)
			}
			continue
		}
		if p == Placeholder {
			out = append(out, 0)
			continue
		}
		n, err := ParseInstance(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseInstance parses a 1-based instance number.
func ParseInstance(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadInstance, s)
	}
	return n, nil
}

func isInstance(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
