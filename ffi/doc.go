// Package ffi is the flat boundary surface of the wallet. Every entity is
// referenced by an opaque handle.Handle; callers own the handles they are
// given and release each one exactly once through its destroy function.
//
// # Failure Convention
//
// Fallible constructors return handle.Nil on failure. Accessors called
// with the nil or a stale handle return zero values. Destroy functions
// are no-ops on invalid handles. When an operation collapses a real
// failure into a sentinel it records the mapped error; LastError exposes
// the most recent record.
//
// # Ownership
//
// Collection queries snapshot the wallet's state into a new collection
// handle; later wallet activity never mutates an existing collection.
// Element accessors and callback dispatch hand out freshly cloned entity
// handles, each owned by the receiver.
package ffi
