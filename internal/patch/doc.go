// Package patch loads declarative HCL patch files and builds the
// dataflow graph they describe.
//
// A patch file names its nodes, configures them through kind-specific
// attributes, and wires them with connect blocks:
//
//	patch {
//	  width       = 120
//	  height      = 40
//	  sample_rate = 44100
//	}
//
//	node "oscillator" "carrier" {
//	  shape     = "sine"
//	  frequency = 440
//	}
//
//	node "audio_out" "speaker" {}
//
//	connect {
//	  from = "carrier"
//	  to   = "speaker"
//	}
//
// Connect blocks are order-significant: the order in which connections
// arrive at a node is the positional input order its evaluator consumes.
//
// Loading is strict where evaluation is not: unknown node kinds, unknown
// node names in connect blocks, and malformed attribute values are
// load-time errors. Once a graph is built, evaluation never fails.
package patch
