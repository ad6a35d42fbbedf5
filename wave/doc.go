// SPDX-License-Identifier: EPL-2.0

// Package wave defines the block-based synthesis protocol.
//
// A synthesis graph is a tree of Wave values. Leaves are oscillators (see the
// osc package) and inner nodes are combinators that own exactly one child and
// transform the Chunk it returns:
//
//	saw := osc.NewSaw(48000, wave.Hz(220))
//	sine := wave.NewSine(saw)
//
//	var elapsed uint64
//	for elapsed < 48000 {
//	    chunk := sine.Synthesize(elapsed, wave.ChunkSize, nil)
//	    // consume chunk
//	    elapsed += wave.ChunkSize
//	}
//
// Every call is a pure function of its arguments and the node's immutable
// configuration, so a graph can be driven from any elapsed value and always
// reproduces the same output. Graphs carry no locks; share one between
// goroutines only with external synchronization.
package wave
