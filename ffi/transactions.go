package ffi

import (
	"github.com/halcyoncore/wallet-bridge/handle"
)

// inBounds reports whether position indexes a collection of n elements.
func inBounds(position uint32, n int) bool {
	return int64(position) < int64(n)
}

// Contact collections.

// ContactsGetLength returns the collection's length, or 0 for an invalid
// handle.
func ContactsGetLength(h handle.Handle) uint32 {
	list, ok := contactLists.Get(h)
	if !ok {
		return 0
	}
	return uint32(len(list))
}

// ContactsGetAt returns a fresh contact handle for the element at
// position. Invalid handles and out-of-range positions yield handle.Nil.
func ContactsGetAt(h handle.Handle, position uint32) handle.Handle {
	list, ok := contactLists.Get(h)
	if !ok {
		return handle.Nil
	}
	if !inBounds(position, len(list)) {
		return handle.Nil
	}
	return contacts.Insert(list[position])
}

// ContactsDestroy releases a contact collection. No-op on invalid handles.
func ContactsDestroy(h handle.Handle) {
	contactLists.Remove(h)
}

// Completed transaction collections.

func CompletedTransactionsGetLength(h handle.Handle) uint32 {
	list, ok := completedTxLists.Get(h)
	if !ok {
		return 0
	}
	return uint32(len(list))
}

func CompletedTransactionsGetAt(h handle.Handle, position uint32) handle.Handle {
	list, ok := completedTxLists.Get(h)
	if !ok {
		return handle.Nil
	}
	if !inBounds(position, len(list)) {
		return handle.Nil
	}
	return completedTxs.Insert(list[position])
}

func CompletedTransactionsDestroy(h handle.Handle) {
	completedTxLists.Remove(h)
}

// Pending inbound transaction collections.

func PendingInboundTransactionsGetLength(h handle.Handle) uint32 {
	list, ok := inboundTxLists.Get(h)
	if !ok {
		return 0
	}
	return uint32(len(list))
}

func PendingInboundTransactionsGetAt(h handle.Handle, position uint32) handle.Handle {
	list, ok := inboundTxLists.Get(h)
	if !ok {
		return handle.Nil
	}
	if !inBounds(position, len(list)) {
		return handle.Nil
	}
	return inboundTxs.Insert(list[position])
}

func PendingInboundTransactionsDestroy(h handle.Handle) {
	inboundTxLists.Remove(h)
}

// Pending outbound transaction collections.

func PendingOutboundTransactionsGetLength(h handle.Handle) uint32 {
	list, ok := outboundTxLists.Get(h)
	if !ok {
		return 0
	}
	return uint32(len(list))
}

func PendingOutboundTransactionsGetAt(h handle.Handle, position uint32) handle.Handle {
	list, ok := outboundTxLists.Get(h)
	if !ok {
		return handle.Nil
	}
	if !inBounds(position, len(list)) {
		return handle.Nil
	}
	return outboundTxs.Insert(list[position])
}

func PendingOutboundTransactionsDestroy(h handle.Handle) {
	outboundTxLists.Remove(h)
}

// Completed transaction accessors. All return zero values for invalid
// handles; timestamps are Unix epoch seconds.

func CompletedTransactionGetTransactionID(h handle.Handle) uint64 {
	tx, ok := completedTxs.Get(h)
	if !ok {
		return 0
	}
	return uint64(tx.ID)
}

func CompletedTransactionGetAmount(h handle.Handle) uint64 {
	tx, ok := completedTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Amount
}

func CompletedTransactionGetFee(h handle.Handle) uint64 {
	tx, ok := completedTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Fee
}

func CompletedTransactionGetTimestamp(h handle.Handle) int64 {
	tx, ok := completedTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Timestamp.Unix()
}

// CompletedTransactionGetDestination returns a fresh public key handle.
func CompletedTransactionGetDestination(h handle.Handle) handle.Handle {
	tx, ok := completedTxs.Get(h)
	if !ok {
		return handle.Nil
	}
	return publicKeys.Insert(tx.Destination)
}

func CompletedTransactionDestroy(h handle.Handle) {
	completedTxs.Remove(h)
}

// Pending inbound transaction accessors.

func PendingInboundTransactionGetTransactionID(h handle.Handle) uint64 {
	tx, ok := inboundTxs.Get(h)
	if !ok {
		return 0
	}
	return uint64(tx.ID)
}

func PendingInboundTransactionGetAmount(h handle.Handle) uint64 {
	tx, ok := inboundTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Amount
}

func PendingInboundTransactionGetTimestamp(h handle.Handle) int64 {
	tx, ok := inboundTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Timestamp.Unix()
}

// PendingInboundTransactionGetSource returns a fresh public key handle.
func PendingInboundTransactionGetSource(h handle.Handle) handle.Handle {
	tx, ok := inboundTxs.Get(h)
	if !ok {
		return handle.Nil
	}
	return publicKeys.Insert(tx.Source)
}

func PendingInboundTransactionDestroy(h handle.Handle) {
	inboundTxs.Remove(h)
}

// Pending outbound transaction accessors.

func PendingOutboundTransactionGetTransactionID(h handle.Handle) uint64 {
	tx, ok := outboundTxs.Get(h)
	if !ok {
		return 0
	}
	return uint64(tx.ID)
}

func PendingOutboundTransactionGetAmount(h handle.Handle) uint64 {
	tx, ok := outboundTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Amount
}

func PendingOutboundTransactionGetFee(h handle.Handle) uint64 {
	tx, ok := outboundTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Fee
}

func PendingOutboundTransactionGetTimestamp(h handle.Handle) int64 {
	tx, ok := outboundTxs.Get(h)
	if !ok {
		return 0
	}
	return tx.Timestamp.Unix()
}

// PendingOutboundTransactionGetDestination returns a fresh public key
// handle.
func PendingOutboundTransactionGetDestination(h handle.Handle) handle.Handle {
	tx, ok := outboundTxs.Get(h)
	if !ok {
		return handle.Nil
	}
	return publicKeys.Insert(tx.Destination)
}

func PendingOutboundTransactionDestroy(h handle.Handle) {
	outboundTxs.Remove(h)
}
