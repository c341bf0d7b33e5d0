// Package handle provides the generation-checked opaque handle table that
// backs every value exposed across the wallet boundary.
//
// Foreign callers hold handles, not pointers. A handle encodes a table slot
// and a per-slot generation counter; when a slot is freed and later reused,
// the generation advances, so a stale handle from a destroyed value is
// rejected instead of silently aliasing the new occupant.
//
// # Handle Table
//
// The Table maps handles to Go values:
//
//	table := handle.NewTable()
//
//	// Insert a value, get a handle
//	h := table.Insert(typeID, myValue)
//
//	// Retrieve the value by handle
//	value, ok := table.Get(h)
//
//	// Remove and get the value (ownership leaves the table)
//	value, ok := table.Remove(h)
//
// Handle 0 (handle.Nil) is reserved and always invalid, which makes it the
// natural null sentinel at the boundary.
//
// # Type Safety
//
// Handles are typed; each entity kind gets a unique type ID and lookups can
// be type-checked with GetTyped. The generic Typed wrapper builds a
// type-safe view over a shared table so distinct entity kinds can share one
// slot arena without interface assertions at every call site.
//
// # Memory Management
//
// Values are not garbage collected out of the table. The boundary must
// Remove a value when the caller destroys its handle, or Close the table to
// release everything at teardown. Values implementing Dropper get their
// Drop method called on removal.
package handle
