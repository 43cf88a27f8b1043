// Package buffer provides a reusable fixed-length block type and a pool of
// blocks for draining double buffers without per-batch allocation.
// Consumers work on the raw slice returned by Samples; Valid records how many
// leading elements of a partially filled block carry data.
package buffer
