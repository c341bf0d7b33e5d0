package ffi

import (
	"sync"

	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/handle"
)

// Callbacks holds one callback slot per event kind. Registering into an
// occupied slot overwrites it. Callbacks run on the owning wallet's
// dispatcher goroutine, never on a caller's; the handle passed to a
// callback is freshly created and owned by the callback.
type Callbacks struct {
	mu                       sync.Mutex
	receivedTransaction      func(inbound handle.Handle)
	receivedTransactionReply func(completed handle.Handle)
}

func (c *Callbacks) dispatch(ev engine.Event) {
	c.mu.Lock()
	onInbound := c.receivedTransaction
	onReply := c.receivedTransactionReply
	c.mu.Unlock()

	switch ev.Kind {
	case engine.EventReceivedTransaction:
		if onInbound != nil && ev.Inbound != nil {
			onInbound(inboundTxs.Insert(*ev.Inbound))
		}
	case engine.EventReceivedTransactionReply:
		if onReply != nil && ev.Completed != nil {
			onReply(completedTxs.Insert(*ev.Completed))
		}
	}
}

// CallbacksCreate returns a handle to an empty callback table.
func CallbacksCreate() handle.Handle {
	return callbackTables.Insert(&Callbacks{})
}

// CallbacksDestroy releases a callback table and empties both slots, so a
// wallet still bound to it drops subsequent events instead of invoking
// callbacks the caller has released. No-op on invalid handles.
func CallbacksDestroy(h handle.Handle) {
	c, ok := callbackTables.Remove(h)
	if !ok {
		return
	}
	c.mu.Lock()
	c.receivedTransaction = nil
	c.receivedTransactionReply = nil
	c.mu.Unlock()
}

// CallbacksRegisterReceivedTransaction installs fn for inbound
// transaction events, replacing any previous registration. Reports
// whether the table handle was valid.
func CallbacksRegisterReceivedTransaction(h handle.Handle, fn func(inbound handle.Handle)) bool {
	c, ok := callbackTables.Get(h)
	if !ok {
		return false
	}
	c.mu.Lock()
	c.receivedTransaction = fn
	c.mu.Unlock()
	return true
}

// CallbacksRegisterReceivedTransactionReply installs fn for transaction
// reply events, replacing any previous registration. Reports whether the
// table handle was valid.
func CallbacksRegisterReceivedTransactionReply(h handle.Handle, fn func(completed handle.Handle)) bool {
	c, ok := callbackTables.Get(h)
	if !ok {
		return false
	}
	c.mu.Lock()
	c.receivedTransactionReply = fn
	c.mu.Unlock()
	return true
}
