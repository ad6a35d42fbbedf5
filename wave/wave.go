// SPDX-License-Identifier: EPL-2.0

package wave

import "strconv"

// Wave is a node of a synthesis graph.
type Wave interface {
	// Synthesize returns the chunk starting at elapsed, in sample ticks since
	// the graph started. interval is the number of ticks the chunk covers and
	// vars holds the control variables for this call.
	//
	// The result must depend only on the arguments and the node's own
	// configuration, so that any chunk can be reproduced by seeking to its
	// elapsed value.
	Synthesize(elapsed, interval uint64, vars []float32) Chunk
}

// Func adapts an ordinary function to the Wave interface.
type Func func(elapsed, interval uint64, vars []float32) Chunk

// Synthesize calls f(elapsed, interval, vars).
func (f Func) Synthesize(elapsed, interval uint64, vars []float32) Chunk {
	return f(elapsed, interval, vars)
}

// Hz is a frequency in hertz.
type Hz float64

// Float returns the frequency as a plain number of hertz.
func (h Hz) Float() float64 { return float64(h) }

func (h Hz) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64) + " Hz"
}

// Tick returns the tick of position i inside a chunk that starts at elapsed
// and covers interval ticks.
func Tick(elapsed, interval uint64, i int) float64 {
	return float64(elapsed) + float64(i)*float64(interval)/ChunkSize
}
