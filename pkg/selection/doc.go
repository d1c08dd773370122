// Package selection implements the drill-down state machine for the wheel.
// It tracks the in-progress core/primary/tertiary path, enforces valid
// transitions against the taxonomy, and emits a completed selection exactly
// once when a leaf is chosen under a fully specified path.
package selection
