// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// clone.go - deep copies of free-form metadata and the Definition→Input round trip.
//
// Metadata maps are copied recursively. The shapes produced by the YAML/JSON
// decoders take a fast path; any other slice, array, map or pointer is copied
// through reflection. Scalars are immutable and copied by value.

package core

import (
	"reflect"

	"github.com/katalvlaran/linenet/geom"
)

// cloneMap deep-copies m, preserving nil.
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}

// cloneValue deep-copies the container shapes metadata can hold.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []float64:
		return append([]float64(nil), t...)
	case []int:
		return append([]int(nil), t...)
	case nil, string, bool, int, int64, float64:
		return v
	default:
		return cloneReflect(reflect.ValueOf(v)).Interface()
	}
}

// cloneReflect deep-copies containers of any element type, preserving nil.
// Struct values are copied shallowly.
func cloneReflect(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(reflect.ValueOf(cloneValue(v.Elem().Interface())))
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneReflect(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneReflect(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneReflect(v.Index(i)))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(cloneReflect(v.Elem()))
		return out
	default:
		return v
	}
}

func cloneFloat(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}

	return &v
}

func coordinateInput(c geom.Coordinate) CoordinateInput {
	return CoordinateInput{c[0], c[1]}
}

// Input returns a deep copy of d in raw input form. Feeding it back to
// Define yields an equal Definition.
func (d *Definition) Input() DefinitionInput {
	in := DefinitionInput{
		Nodes: make([]NodeInput, len(d.nodes)),
		Edges: make([]EdgeInput, len(d.edges)),
		Meta:  cloneMap(d.meta),
	}
	for i, n := range d.nodes {
		in.Nodes[i] = NodeInput{
			ID:       n.id,
			Position: coordinateInput(n.position),
			Label:    n.label,
			Meta:     cloneMap(n.meta),
		}
	}
	for i, e := range d.edges {
		segs := make([]SegmentInput, len(e.segments))
		for j, s := range e.segments {
			segs[j] = SegmentInput{Kind: s.kind, To: coordinateInput(s.to)}
			if s.controls != nil {
				segs[j].ControlPoints = make([]CoordinateInput, len(s.controls))
				for k, cp := range s.controls {
					segs[j].ControlPoints[k] = coordinateInput(cp)
				}
			}
		}
		in.Edges[i] = EdgeInput{
			ID:       e.id,
			From:     e.from,
			To:       e.to,
			Segments: segs,
			Offset:   cloneFloat(e.offset, e.hasOffset),
			Weight:   cloneFloat(e.weight, e.hasWeight),
			Meta:     cloneMap(e.meta),
		}
	}
	if d.hasTimelines {
		in.Timelines = make([]ClipInput, len(d.timelines))
		for i, c := range d.timelines {
			in.Timelines[i] = ClipInput{
				ID:         c.id,
				TargetType: c.targetType,
				TargetID:   c.targetID,
				Action:     c.action,
				Beat:       c.beat,
				Length:     cloneFloat(c.length, c.hasLength),
				Payload:    cloneMap(c.payload),
			}
			if !c.easing.IsZero() {
				e := c.easing
				in.Timelines[i].Easing = &e
			}
		}
	}

	return in
}
