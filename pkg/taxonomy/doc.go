// Package taxonomy defines the emotion taxonomy types for Whorl.
// The taxonomy is an immutable three-level tree of named, colored
// nodes (core -> primary -> tertiary) that the wheel renders and
// the selection machine drills into.
package taxonomy
