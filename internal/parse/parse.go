// Package parse turns free-text vector input into numeric batches. The
// orthonormalization engine itself only accepts parsed vectors; this is the
// caller-side boundary that deals with raw text.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Vectors parses one vector batch from free text.
//
// Two layouts are accepted: bracket groups, where each vector is wrapped in
// "[...]" and groups may share a line, or line mode, where each non-empty
// line is one vector. Within a vector, components are separated by commas
// and/or whitespace. Components must be finite decimal numbers.
func Vectors(input string) ([][]float64, error) {
	var rows []string
	var err error

	if strings.Contains(input, "[") {
		rows, err = bracketGroups(input)
		if err != nil {
			return nil, err
		}
	} else {
		for _, line := range strings.Split(input, "\n") {
			if strings.TrimSpace(line) != "" {
				rows = append(rows, line)
			}
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no vectors found in input")
	}

	batch := make([][]float64, 0, len(rows))
	for i, row := range rows {
		vec, err := components(row)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		batch = append(batch, vec)
	}

	return batch, nil
}

// bracketGroups extracts the contents of every top-level "[...]" pair.
func bracketGroups(input string) ([]string, error) {
	var groups []string
	start := -1

	for i, r := range input {
		switch r {
		case '[':
			if start >= 0 {
				return nil, fmt.Errorf("nested '[' at offset %d", i)
			}
			start = i + 1
		case ']':
			if start < 0 {
				return nil, fmt.Errorf("unmatched ']' at offset %d", i)
			}
			groups = append(groups, input[start:i])
			start = -1
		}
	}
	if start >= 0 {
		return nil, fmt.Errorf("unclosed '['")
	}

	return groups, nil
}

// components splits one vector row into numbers.
func components(row string) ([]float64, error) {
	fields := strings.FieldsFunc(row, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no components")
	}

	vec := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("bad component %q", field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite component %q", field)
		}
		vec = append(vec, v)
	}

	return vec, nil
}
