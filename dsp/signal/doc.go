// Package signal generates deterministic test signals and feeds them to
// block writers in receiver-sized chunks.
package signal
