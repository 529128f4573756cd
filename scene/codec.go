// SPDX-License-Identifier: MIT
// Package: linenet/scene
//
// codec.go - per-format encoders and decoders.

package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linenet/core"
)

// Format names a scene file format.
type Format string

// Built-in formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Codec reads and writes one scene format.
type Codec interface {
	Decode(r io.Reader, in *core.DefinitionInput) error
	Encode(w io.Writer, in core.DefinitionInput) error
	Format() Format
	Extensions() []string
}

// clipBeats mirrors only the clip beats, telling an absent beat from 0.
type clipBeats struct {
	Timelines []struct {
		Beat *float64 `yaml:"beat" json:"beat"`
	} `yaml:"timelines" json:"timelines"`
}

// markMissingBeats sets the beat of every clip that had none to NaN, so
// core.Define reports it as a non-finite number instead of reading 0.
func markMissingBeats(in *core.DefinitionInput, seen clipBeats) {
	for i := range in.Timelines {
		if i < len(seen.Timelines) && seen.Timelines[i].Beat == nil {
			in.Timelines[i].Beat = math.NaN()
		}
	}
}

// YAMLCodec handles .yaml and .yml files.
type YAMLCodec struct{}

func (YAMLCodec) Decode(r io.Reader, in *core.DefinitionInput) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(in); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyScene
		}
		return fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}

	var seen clipBeats
	if err = yaml.Unmarshal(data, &seen); err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}
	markMissingBeats(in, seen)

	return nil
}

func (YAMLCodec) Encode(w io.Writer, in core.DefinitionInput) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return err
	}

	return enc.Close()
}

func (YAMLCodec) Format() Format       { return FormatYAML }
func (YAMLCodec) Extensions() []string { return []string{".yaml", ".yml"} }

// JSONCodec handles .json files.
type JSONCodec struct {
	// Indent is used by Encode; empty means compact output.
	Indent string
}

func (JSONCodec) Decode(r io.Reader, in *core.DefinitionInput) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(in); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyScene
		}
		return fmt.Errorf("%w: json: %w", ErrDecode, err)
	}

	var seen clipBeats
	if err = json.Unmarshal(data, &seen); err != nil {
		return fmt.Errorf("%w: json: %w", ErrDecode, err)
	}
	markMissingBeats(in, seen)

	return nil
}

func (c JSONCodec) Encode(w io.Writer, in core.DefinitionInput) error {
	enc := json.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}

	return enc.Encode(in)
}

func (JSONCodec) Format() Format       { return FormatJSON }
func (JSONCodec) Extensions() []string { return []string{".json"} }
