package engine

import (
	"time"

	"github.com/halcyoncore/wallet-bridge/keys"
)

// TxID identifies a transaction. IDs are unsigned 64-bit values assigned by
// the sending engine.
type TxID uint64

// Contact is an aliased public key known to the wallet.
type Contact struct {
	Alias     string
	PublicKey keys.PublicKey
}

// CompletedTransaction is a transaction that finished negotiation.
type CompletedTransaction struct {
	ID          TxID
	Destination keys.PublicKey
	Amount      uint64
	Fee         uint64
	Timestamp   time.Time
}

// InboundTransaction is a pending transaction received from a peer and not
// yet completed.
type InboundTransaction struct {
	ID        TxID
	Source    keys.PublicKey
	Amount    uint64
	Timestamp time.Time
}

// OutboundTransaction is a pending transaction sent to a peer and awaiting
// its reply.
type OutboundTransaction struct {
	ID          TxID
	Destination keys.PublicKey
	Amount      uint64
	Fee         uint64
	Timestamp   time.Time
}

// EventKind discriminates asynchronous engine events.
type EventKind int

const (
	// EventReceivedTransaction fires when a peer sends us a transaction.
	EventReceivedTransaction EventKind = iota
	// EventReceivedTransactionReply fires when a peer acknowledges a
	// transaction we sent, completing it.
	EventReceivedTransactionReply
)

func (k EventKind) String() string {
	switch k {
	case EventReceivedTransaction:
		return "received_transaction"
	case EventReceivedTransactionReply:
		return "received_transaction_reply"
	default:
		return "unknown"
	}
}

// Event is one entry of the engine's asynchronous event stream. Exactly one
// payload field is set, matching Kind.
type Event struct {
	Kind      EventKind
	Inbound   *InboundTransaction   // EventReceivedTransaction
	Completed *CompletedTransaction // EventReceivedTransactionReply
}
