// Package wheel is the angular geometry engine for the radial selector.
// Given a taxonomy, a selection state, and ring radii, it deterministically
// computes the drawable segments of each ring: angular bounds, annular
// sector outlines, label anchors and rotations, and fills. Segments are
// derived values, recomputed every render, and carry no lifecycle of their
// own. The engine is pure: it performs no I/O and never mutates its inputs.
package wheel
