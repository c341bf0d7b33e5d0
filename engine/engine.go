package engine

import (
	"context"

	"github.com/halcyoncore/wallet-bridge/keys"
)

// Engine is the blocking surface of the external wallet engine. Every
// operation runs to completion or fails with a typed error; no partial
// results are returned.
//
// Implementations must be safe for concurrent use: the facade serializes
// calls per wallet, but the event stream and shutdown may race with
// in-flight operations.
type Engine interface {
	// AddBaseNodePeer registers a base node the engine may route through.
	AddBaseNodePeer(ctx context.Context, pub keys.PublicKey, address string) error

	// Balance returns the spendable balance in minor units.
	Balance(ctx context.Context) (uint64, error)

	// SendTransaction starts negotiation of a payment to dest and returns
	// the assigned transaction ID.
	SendTransaction(ctx context.Context, dest keys.PublicKey, amount, feePerGram uint64) (TxID, error)

	// Contacts returns the wallet's contacts ordered by alias.
	Contacts(ctx context.Context) ([]Contact, error)

	// SaveContact inserts or updates a contact keyed by public key.
	SaveContact(ctx context.Context, c Contact) error

	// RemoveContact deletes the contact with the given public key.
	RemoveContact(ctx context.Context, pub keys.PublicKey) error

	// CompletedTransactions returns completed transactions ordered by ID.
	CompletedTransactions(ctx context.Context) ([]CompletedTransaction, error)

	// PendingInboundTransactions returns pending inbound transactions
	// ordered by ID.
	PendingInboundTransactions(ctx context.Context) ([]InboundTransaction, error)

	// PendingOutboundTransactions returns pending outbound transactions
	// ordered by ID.
	PendingOutboundTransactions(ctx context.Context) ([]OutboundTransaction, error)

	// GenerateTestData seeds the engine with sample contacts and
	// transactions for harness use.
	GenerateTestData(ctx context.Context) error

	// Events exposes the asynchronous event stream. The same channel is
	// returned on every call; it is closed by Shutdown.
	Events() <-chan Event

	// Shutdown stops the engine and closes the event stream. It is safe
	// to call once; operations issued after Shutdown fail.
	Shutdown(ctx context.Context) error
}
