// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDefinition(dopts, bopts, cons...). Creates a
//     Draft, resolves cfg, runs cons in order, then hands the draft to
//     core.Define.
//   - Functional options (BuilderOption) resolve into a builderConfig value.
//   - Determinism: same options, seed, and constructor order give identical
//     definitions.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linenet/core"
)

// Constructor applies a deterministic mutation to a Draft using the resolved
// builderConfig. Constructors validate parameters before touching the draft.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildInput runs cons against a fresh Draft and returns its raw input.
// Constructor errors are wrapped as "BuildInput: %w".
func BuildInput(bopts []BuilderOption, cons ...Constructor) (core.DefinitionInput, error) {
	d := NewDraft()
	if err := apply(d, newBuilderConfig(bopts...), cons); err != nil {
		return core.DefinitionInput{}, fmt.Errorf("BuildInput: %w", err)
	}

	return d.Input(), nil
}

// BuildDefinition runs cons and validates the result with core.Define using dopts.
// A draft rejected by Define yields an error matching both ErrConstructFailed
// and the core sentinels.
func BuildDefinition(dopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Definition, error) {
	d := NewDraft()
	if err := apply(d, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildDefinition: %w", err)
	}
	def, err := core.Define(d.Input(), dopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildDefinition: %w: %w", ErrConstructFailed, err)
	}

	return def, nil
}

// Apply resolves opts and runs cons against an existing draft.
func Apply(d *Draft, opts []BuilderOption, cons ...Constructor) error {
	if d == nil {
		return fmt.Errorf("Apply: nil draft: %w", ErrConstructFailed)
	}

	return apply(d, newBuilderConfig(opts...), cons)
}

func apply(d *Draft, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Meta returns a Constructor that sets a definition metadata entry.
func Meta(key string, value any) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if key == "" {
			return fmt.Errorf("%s: empty key: %w", MethodMeta, ErrInvalidParameter)
		}
		d.SetMeta(key, value)
		return nil
	}
}
