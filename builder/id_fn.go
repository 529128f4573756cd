// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// id_fn.go - node id schemes for index-based constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index.
// It must be pure: the same idx always yields the same id.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "n0", "n1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// edgeID names an edge after its endpoints.
func edgeID(from, to string) string { return from + "-" + to }
