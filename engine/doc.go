// Package engine defines the wallet engine collaborator surface.
//
// The wallet engine — transaction negotiation, output management, peer
// comms — is external to this module. The boundary layer only consumes it
// through the Engine interface: blocking, context-aware operations that
// either return a result or fail with a typed error from the taxonomy in
// this package.
//
// # Services
//
// The interface mirrors the engine's internal service split:
//
//	output manager       Balance
//	transaction service  SendTransaction, CompletedTransactions,
//	                     PendingInbound/OutboundTransactions
//	contact service      Contacts, SaveContact, RemoveContact
//	comms                AddBaseNodePeer
//
// # Events
//
// Events exposes the engine's asynchronous event stream. The channel is
// closed by Shutdown; events are delivered in emission order. Consumers
// must keep draining the channel until it closes or engine emission may
// stall.
//
// # Error Taxonomy
//
// OutputManagerError, TransactionServiceError and AddressError are the
// engine-side error families the boundary error mapper flattens into
// caller-facing codes. Each carries a variant kind; storage and
// output-manager failures nest as wrapped causes, matching how the engine
// layers its services.
package engine
