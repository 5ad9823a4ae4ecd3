// SPDX-License-Identifier: MIT

package cargo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// problemDoc is the on-disk shape of a problem file. Per-dimension values are
// keyed by dimension name so the file does not depend on column order.
type problemDoc struct {
	Dimensions  []string        `yaml:"dimensions"`
	Resources   []resourceDoc   `yaml:"resources"`
	Bins        []binDoc        `yaml:"bins"`
	Adjustments []adjustmentDoc `yaml:"adjustments"`
}

type resourceDoc struct {
	ID          int                `yaml:"id"`
	Name        string             `yaml:"name"`
	Consumption map[string]float64 `yaml:"consumption"`
	Profit      float64            `yaml:"profit"`
	Available   float64            `yaml:"available"`
}

type binDoc struct {
	ID     int                `yaml:"id"`
	Name   string             `yaml:"name"`
	Limits map[string]float64 `yaml:"limits"`
}

type adjustmentDoc struct {
	Resource  string  `yaml:"resource"`
	Available float64 `yaml:"available"`
}

// LoadProblem decodes a YAML problem document and validates it.
//
// Unknown fields are rejected. Every resource must give a consumption value
// and every bin a limit for each listed dimension, and nothing else.
//
// Errors:
//   - ErrInvalidProblem (wrapped) for undecodable input or failed validation.
//   - ErrDimensionMismatch (wrapped) for missing or unknown dimension keys.
func LoadProblem(r io.Reader) (Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc problemDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Problem{}, fmt.Errorf("%w: empty document", ErrInvalidProblem)
		}

		return Problem{}, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}

	p, err := doc.problem()
	if err != nil {
		return Problem{}, err
	}
	if err = p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// LoadProblemFile opens path and calls LoadProblem on it.
func LoadProblemFile(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, err
	}
	defer f.Close()

	p, err := LoadProblem(f)
	if err != nil {
		return Problem{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

func (doc problemDoc) problem() (Problem, error) {
	if len(doc.Dimensions) == 0 {
		return Problem{}, fmt.Errorf("%w: no dimensions", ErrInvalidProblem)
	}
	seen := make(map[string]struct{}, len(doc.Dimensions))
	var d string
	for _, d = range doc.Dimensions {
		if _, dup := seen[d]; dup || d == "" {
			return Problem{}, fmt.Errorf("%w: dimension %q", ErrInvalidProblem, d)
		}
		seen[d] = struct{}{}
	}

	p := Problem{
		Dimensions: append([]string(nil), doc.Dimensions...),
		Resources:  make([]Resource, len(doc.Resources)),
		Bins:       make([]Bin, len(doc.Bins)),
	}
	var (
		i   int
		err error
	)
	for i = range doc.Resources {
		rd := doc.Resources[i]
		p.Resources[i] = Resource{ID: rd.ID, Name: rd.Name, Profit: rd.Profit, Available: rd.Available}
		if p.Resources[i].Consumption, err = vectorOf(doc.Dimensions, rd.Consumption); err != nil {
			return Problem{}, fmt.Errorf("resource %q: %w", rd.Name, err)
		}
	}
	for i = range doc.Bins {
		bd := doc.Bins[i]
		name := bd.Name
		if name == "" {
			name = fmt.Sprintf("bin %d", bd.ID)
		}
		p.Bins[i] = Bin{ID: bd.ID, Name: name}
		if p.Bins[i].Limits, err = vectorOf(doc.Dimensions, bd.Limits); err != nil {
			return Problem{}, fmt.Errorf("bin %q: %w", name, err)
		}
	}
	for _, ad := range doc.Adjustments {
		p.Adjustments = append(p.Adjustments, Adjustment(ad))
	}

	return p, nil
}

// vectorOf orders values by dims. Every dimension must be present exactly once.
func vectorOf(dims []string, values map[string]float64) ([]float64, error) {
	if len(values) != len(dims) {
		return nil, fmt.Errorf("%w: %d values for %d dimensions", ErrDimensionMismatch, len(values), len(dims))
	}
	out := make([]float64, len(dims))
	var (
		k  int
		v  float64
		ok bool
	)
	for k = range dims {
		if v, ok = values[dims[k]]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrDimensionMismatch, dims[k])
		}
		out[k] = v
	}

	return out, nil
}
