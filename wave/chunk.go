// SPDX-License-Identifier: EPL-2.0

package wave

import "math"

// ChunkSize is the number of samples produced by one Synthesize call.
const ChunkSize = 32

// Chunk is one block of float samples in [-1, 1].
type Chunk [ChunkSize]float32

// Amplify multiplies every sample by factor.
func (c *Chunk) Amplify(factor float32) {
	for i := range c {
		c[i] *= factor
	}
}

// Cosine replaces every sample x, taken as radians, with cos(x).
func (c *Chunk) Cosine() {
	for i := range c {
		c[i] = float32(math.Cos(float64(c[i])))
	}
}

// Invert negates every sample.
func (c *Chunk) Invert() {
	for i := range c {
		c[i] = -c[i]
	}
}

// Abs replaces every sample with its absolute value.
func (c *Chunk) Abs() {
	for i := range c {
		c[i] = float32(math.Abs(float64(c[i])))
	}
}
