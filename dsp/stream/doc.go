// Package stream drives a double buffer as a well-behaved producer.
//
// A Processor accepts samples in chunks of any length, accumulates them in a
// pingpong.Buffer and calls a BlockFunc with every completed block. Flush
// delivers the trailing partial block at end of stream.
package stream
