// SPDX-License-Identifier: MIT
// Package: linenet/scene
//
// loader.go - codec registry and file helpers.

package scene

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/linenet/core"
)

// Loader picks a Codec by format name or file extension.
// The zero value is not usable; call NewLoader.
type Loader struct {
	byFormat map[Format]Codec
	byExt    map[string]Codec
}

// NewLoader returns a Loader with the YAML and JSON codecs registered.
func NewLoader() *Loader {
	l := &Loader{
		byFormat: make(map[Format]Codec),
		byExt:    make(map[string]Codec),
	}
	l.Register(YAMLCodec{})
	l.Register(JSONCodec{Indent: "  "})

	return l
}

// Register adds or replaces the codec for c.Format() and its extensions.
func (l *Loader) Register(c Codec) {
	l.byFormat[c.Format()] = c
	for _, ext := range c.Extensions() {
		l.byExt[strings.ToLower(ext)] = c
	}
}

// Codec returns the codec registered for f.
func (l *Loader) Codec(f Format) (Codec, error) {
	c, ok := l.byFormat[Format(strings.ToLower(string(f)))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return c, nil
}

// CodecFor returns the codec registered for path's extension.
func (l *Loader) CodecFor(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := l.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: extension %q of %s", ErrUnknownFormat, ext, path)
	}

	return c, nil
}

// Load decodes one scene in format f from r.
func (l *Loader) Load(r io.Reader, f Format) (core.DefinitionInput, error) {
	var in core.DefinitionInput
	c, err := l.Codec(f)
	if err != nil {
		return in, err
	}
	err = c.Decode(r, &in)

	return in, err
}

// LoadFile decodes the scene stored at path.
func (l *Loader) LoadFile(path string) (core.DefinitionInput, error) {
	var in core.DefinitionInput
	c, err := l.CodecFor(path)
	if err != nil {
		return in, err
	}
	f, err := os.Open(path)
	if err != nil {
		return in, err
	}
	defer f.Close()

	if err = c.Decode(f, &in); err != nil {
		return in, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Open loads path and validates it with core.Define.
func (l *Loader) Open(path string, opts ...core.Option) (*core.Definition, error) {
	in, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := core.Define(in, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Write encodes in to w in format f.
func (l *Loader) Write(w io.Writer, in core.DefinitionInput, f Format) error {
	c, err := l.Codec(f)
	if err != nil {
		return err
	}

	return c.Encode(w, in)
}

// WriteFile encodes in to path, picking the format from its extension.
func (l *Loader) WriteFile(path string, in core.DefinitionInput) (err error) {
	c, err := l.CodecFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return c.Encode(f, in)
}

var std = NewLoader()

// Load decodes one scene in format f from r using the default loader.
func Load(r io.Reader, f Format) (core.DefinitionInput, error) { return std.Load(r, f) }

// LoadFile decodes path using the default loader.
func LoadFile(path string) (core.DefinitionInput, error) { return std.LoadFile(path) }

// Open loads and validates path using the default loader.
func Open(path string, opts ...core.Option) (*core.Definition, error) {
	return std.Open(path, opts...)
}

// Write encodes in using the default loader.
func Write(w io.Writer, in core.DefinitionInput, f Format) error { return std.Write(w, in, f) }

// WriteFile encodes in to path using the default loader.
func WriteFile(path string, in core.DefinitionInput) error { return std.WriteFile(path, in) }
