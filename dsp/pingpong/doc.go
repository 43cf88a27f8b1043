// Package pingpong provides a fixed-capacity double buffer for
// producer/consumer pipelines.
//
// A Buffer owns two slots of equal capacity. The producer writes into the
// active slot with Append or Push. When the active slot fills up, the slots
// exchange roles: the filled slot becomes the reserve, ready to be drained
// with Read, and writing continues in the other slot. A swap is refused with
// ErrReserveFull while the reserve still holds an unread batch.
//
// Storage is allocated once by New and never resized. ReadInto and FlushInto
// drain into caller-owned memory and do not allocate.
//
// A Buffer performs no synchronization. A producer and a consumer running in
// different goroutines must serialize their calls externally.
package pingpong
