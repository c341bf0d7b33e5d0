package ffi

import (
	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/engine/inproc"
	"github.com/halcyoncore/wallet-bridge/handle"
	"github.com/halcyoncore/wallet-bridge/wallet"
)

// WalletCreate brings up a wallet from a config handle: it opens the
// engine's datastore, joins the shared loopback network and starts the
// facade. Engine startup failures are recorded and yield handle.Nil.
func WalletCreate(config handle.Handle) handle.Handle {
	cfg, ok := commsConfigs.Get(config)
	if !ok {
		return handle.Nil
	}

	eng, err := inproc.New(inproc.Config{
		Secret:        cfg.Secret,
		Address:       cfg.Address,
		DatabaseName:  cfg.DatabaseName,
		DatastorePath: cfg.DatastorePath,
		Network:       network,
		Logger:        wallet.Logger(),
	})
	if err != nil {
		setLastError(err)
		return handle.Nil
	}

	return wallets.Insert(wallet.New(cfg, eng))
}

// WalletDestroy shuts the wallet down and releases its handle. It blocks
// until the engine has stopped. No-op on invalid handles.
func WalletDestroy(h handle.Handle) {
	if w, ok := wallets.Remove(h); ok {
		w.Destroy()
	}
}

// WalletAddBaseNodePeer registers a base node peer by public key handle
// and address string. Reports success; failures are recorded.
func WalletAddBaseNodePeer(h, pub handle.Handle, address string) bool {
	w, ok := wallets.Get(h)
	if !ok {
		return false
	}
	pk, ok := publicKeys.Get(pub)
	if !ok {
		return false
	}
	if err := w.AddBaseNodePeer(pk, address); err != nil {
		setLastError(err)
		return false
	}
	return true
}

// WalletAddContact upserts the contact referenced by a contact handle.
func WalletAddContact(h, contact handle.Handle) bool {
	w, ok := wallets.Get(h)
	if !ok {
		return false
	}
	c, ok := contacts.Get(contact)
	if !ok {
		return false
	}
	if err := w.SaveContact(c); err != nil {
		setLastError(err)
		return false
	}
	return true
}

// WalletRemoveContact deletes the contact referenced by a contact handle.
func WalletRemoveContact(h, contact handle.Handle) bool {
	w, ok := wallets.Get(h)
	if !ok {
		return false
	}
	c, ok := contacts.Get(contact)
	if !ok {
		return false
	}
	if err := w.RemoveContact(c.PublicKey); err != nil {
		setLastError(err)
		return false
	}
	return true
}

// WalletGetBalance returns the spendable balance, or 0 for an invalid
// handle or a failed query.
func WalletGetBalance(h handle.Handle) uint64 {
	w, ok := wallets.Get(h)
	if !ok {
		return 0
	}
	bal, err := w.Balance()
	if err != nil {
		setLastError(err)
		return 0
	}
	return bal
}

// WalletSendTransaction starts a payment to the destination key handle
// and returns the transaction ID, or 0 on failure.
func WalletSendTransaction(h, dest handle.Handle, amount, feePerGram uint64) uint64 {
	w, ok := wallets.Get(h)
	if !ok {
		return 0
	}
	pk, ok := publicKeys.Get(dest)
	if !ok {
		return 0
	}
	id, err := w.SendTransaction(pk, amount, feePerGram)
	if err != nil {
		setLastError(err)
		return 0
	}
	return uint64(id)
}

// WalletGetContacts snapshots the wallet's contacts into a fresh
// collection handle. An empty wallet yields a valid zero-length
// collection, never handle.Nil.
func WalletGetContacts(h handle.Handle) handle.Handle {
	w, ok := wallets.Get(h)
	if !ok {
		return handle.Nil
	}
	list, err := w.Contacts()
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return contactLists.Insert(list)
}

// WalletGetCompletedTransactions snapshots the completed transactions.
func WalletGetCompletedTransactions(h handle.Handle) handle.Handle {
	w, ok := wallets.Get(h)
	if !ok {
		return handle.Nil
	}
	list, err := w.CompletedTransactions()
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return completedTxLists.Insert(list)
}

// WalletGetPendingInboundTransactions snapshots the pending inbound
// transactions.
func WalletGetPendingInboundTransactions(h handle.Handle) handle.Handle {
	w, ok := wallets.Get(h)
	if !ok {
		return handle.Nil
	}
	list, err := w.PendingInboundTransactions()
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return inboundTxLists.Insert(list)
}

// WalletGetPendingOutboundTransactions snapshots the pending outbound
// transactions.
func WalletGetPendingOutboundTransactions(h handle.Handle) handle.Handle {
	w, ok := wallets.Get(h)
	if !ok {
		return handle.Nil
	}
	list, err := w.PendingOutboundTransactions()
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return outboundTxLists.Insert(list)
}

// WalletGetCompletedTransactionByID returns a fresh handle for the
// matching completed transaction, or handle.Nil when absent.
func WalletGetCompletedTransactionByID(h handle.Handle, id uint64) handle.Handle {
	w, ok := wallets.Get(h)
	if !ok {
		return handle.Nil
	}
	tx, err := w.CompletedTransactionByID(engine.TxID(id))
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return completedTxs.Insert(tx)
}

// WalletGetPendingInboundTransactionByID returns a fresh handle for the
// matching pending inbound transaction, or handle.Nil when absent.
func WalletGetPendingInboundTransactionByID(h handle.Handle, id uint64) handle.Handle {
	w, ok := wallets.Get(h)
	if !ok {
		return handle.Nil
	}
	tx, err := w.PendingInboundTransactionByID(engine.TxID(id))
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return inboundTxs.Insert(tx)
}

// WalletGetPendingOutboundTransactionByID returns a fresh handle for the
// matching pending outbound transaction, or handle.Nil when absent.
func WalletGetPendingOutboundTransactionByID(h handle.Handle, id uint64) handle.Handle {
	w, ok := wallets.Get(h)
	if !ok {
		return handle.Nil
	}
	tx, err := w.PendingOutboundTransactionByID(engine.TxID(id))
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return outboundTxs.Insert(tx)
}

// WalletGenerateTestData seeds the wallet with sample contacts,
// transactions and balance.
func WalletGenerateTestData(h handle.Handle) bool {
	w, ok := wallets.Get(h)
	if !ok {
		return false
	}
	if err := w.GenerateTestData(); err != nil {
		setLastError(err)
		return false
	}
	return true
}

// WalletSetCallbacks binds a callback table to the wallet's event stream.
// Events arriving with no table bound, or with an empty slot for their
// kind, are dropped silently. Rebinding replaces the previous table.
func WalletSetCallbacks(h, callbacks handle.Handle) bool {
	w, ok := wallets.Get(h)
	if !ok {
		return false
	}
	c, ok := callbackTables.Get(callbacks)
	if !ok {
		return false
	}
	w.SetEventHandler(c.dispatch)
	return true
}
