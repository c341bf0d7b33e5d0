package handle

// Handle is an opaque reference to a value in a Table.
//
// The low 32 bits address a table slot (offset by one so the zero handle
// stays invalid); the high 32 bits carry the slot's generation at insert
// time. A handle is only valid while its generation matches the slot.
type Handle uint64

// Nil is the reserved invalid handle. It is the null sentinel returned by
// every fallible boundary constructor.
const Nil Handle = 0

// IsNil reports whether h is the invalid sentinel.
func (h Handle) IsNil() bool { return h == Nil }

func (h Handle) slot() uint32       { return uint32(h) }
func (h Handle) generation() uint32 { return uint32(h >> 32) }

func pack(slot, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(slot))
}

// Dropper is optionally implemented by values that need cleanup when their
// handle is destroyed or the table is closed.
type Dropper interface {
	Drop()
}
