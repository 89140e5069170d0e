// Package engine implements the radix-sort instance: pipeline construction
// from a decoded target, memory-requirement planning, and the command
// sequences that drive a direct or indirect sort.
package engine

// RadixLog2 is the number of key bits consumed per pass (one byte).
const RadixLog2 = 8

// RadixSize is the number of histogram buckets per pass: 1<<RadixLog2.
const RadixSize = 256

// MaxKeyvals is the largest element count a single sort can cover. It
// bounds the 30-bit count fields the indirect dispatch path reads back from
// a device-side count buffer, leaving the top two bits free.
const MaxKeyvals = (1 << 30) - 1
