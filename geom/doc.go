// SPDX-License-Identifier: MIT

// Package geom holds the small set of 2D/3D value types shared by the
// line-net packages: normalized canvas coordinates, projected 3D points,
// linear interpolation and Bézier evaluation.
//
// All types are plain values. Copying a Coordinate or Vec3 copies the data,
// so a value handed out by another package can never be used to mutate the
// owner's state.
//
// Coordinates live in normalized canvas space [0,1]×[0,1] by convention. The
// range is not enforced here; finiteness is checked by core.Define.
package geom
