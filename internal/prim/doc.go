// Package prim holds the pure procedural primitives the evaluator leans
// on: integer trigonometry tables, deterministic hash noise, color
// palettes, easing curves, and fixed-point combination helpers. Every
// function here is a stateless function of its arguments, which is what
// makes graph evaluation deterministic and safe on hot paths.
package prim
