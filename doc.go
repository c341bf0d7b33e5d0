// Package walletbridge is the boundary layer that lets a foreign caller
// drive a wallet engine through a stable, C-style handle interface.
//
// The wallet engine itself (transaction negotiation, output management,
// peer comms) is an external collaborator; this module only marshals
// values across the boundary and controls their lifecycle.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	wallet-bridge/       Root package with the module overview (this file)
//	├── ffi/             Boundary surface: create/destroy/accessor operations
//	│                    with sentinel semantics and an errno-style last error
//	├── handle/          Generation-checked opaque handle table
//	├── errors/          Caller-facing (code, message) records and the total
//	│                    mapping from the internal error families
//	├── keys/            32-byte private/public key pairs with byte and hex
//	│                    import/export
//	├── wallet/          Synchronous facade owning the engine and the
//	│                    callback dispatcher
//	├── engine/          Wallet engine collaborator surface: domain types,
//	│                    service operations, events, error taxonomy
//	│   └── inproc/      In-process reference engine used by tests and the
//	│                    testbed binary
//	└── cmd/walletbed/   CLI and interactive console driving the ffi surface
//
// # Boundary Call Convention
//
// Every fallible constructor returns handle.Nil on a nil/malformed input or
// an internal failure. Accessors on an invalid handle return a
// type-appropriate zero value. Destructors are no-ops on handle.Nil and must
// be called exactly once per valid handle. Where a failure was collapsed to
// a sentinel, ffi.LastError reports the mapped (code, message) record.
//
// # Thread Safety
//
// A wallet handle may be shared across goroutines; the facade serializes
// all calls on one wallet through a single worker, so their effects are
// totally ordered. Every other handle is single-owner and not intended for
// concurrent use. Callbacks run on the wallet's dispatcher goroutine, never
// on the goroutine that issued the originating request.
package walletbridge
