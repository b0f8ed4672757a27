// Package graph owns the dataflow node arena and the pull-based
// evaluator that turns (node, context) pairs into typed values.
//
// # Evaluation model
//
// Data flows strictly from output nodes backward through inputs: a
// top-level Evaluate walks each registered output node, which recursively
// demands values from its inputs down to source nodes. Each pass begins
// by resetting every node's tri-state (Unprocessed, Processing,
// Processed); the tri-state gives the evaluator cycle detection and
// per-pass memoization for free.
//
// # Error posture
//
// The evaluator never fails. Cycles log a warning and yield the
// offending node's domain-default zero; missing inputs silently yield the
// same. This keeps a live, editable graph running no matter what shape
// the host has wired it into.
//
// # Hot paths
//
// EvaluateForAudioSample runs once per PCM frame inside an audio
// callback and EvaluateForPixel once per cell of a frame buffer, so
// evaluation allocates nothing beyond the per-call result slice of
// Evaluate: adjacency lists and cached values live on the nodes and are
// sized at construction/connection time.
package graph
