package wallet

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/keys"
)

// ErrDestroyed is returned by operations issued after Destroy.
var ErrDestroyed = errors.New("wallet: destroyed")

// Wallet is the synchronous facade over one engine instance. It is safe
// for concurrent use; calls are serialized on an internal worker so their
// effects are observed in a total order.
type Wallet struct {
	cfg *Config
	eng engine.Engine
	log *zap.Logger

	ops          chan func()
	workerDone   chan struct{}
	dispatchDone chan struct{}

	mu        sync.RWMutex
	handler   func(engine.Event)
	destroyed bool
}

// Option configures a Wallet.
type Option func(*Wallet)

// WithLogger overrides the package logger for this wallet.
func WithLogger(l *zap.Logger) Option {
	return func(w *Wallet) { w.log = l }
}

// New wires a facade around an engine and starts its worker and
// dispatcher. The wallet takes ownership of the engine; Destroy shuts it
// down.
func New(cfg *Config, eng engine.Engine, opts ...Option) *Wallet {
	w := &Wallet{
		cfg:          cfg,
		eng:          eng,
		log:          Logger(),
		ops:          make(chan func()),
		workerDone:   make(chan struct{}),
		dispatchDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.worker()
	go w.dispatch()
	return w
}

// Config returns the configuration the wallet was created with.
func (w *Wallet) Config() *Config { return w.cfg }

// PublicKey returns the wallet's node identity.
func (w *Wallet) PublicKey() keys.PublicKey { return w.cfg.PublicKey() }

func (w *Wallet) worker() {
	defer close(w.workerDone)
	for fn := range w.ops {
		fn()
	}
}

// dispatch forwards engine events to the registered handler, one at a
// time, in emission order. It exits when the engine closes its stream.
func (w *Wallet) dispatch() {
	defer close(w.dispatchDone)
	for ev := range w.eng.Events() {
		w.mu.RLock()
		h := w.handler
		w.mu.RUnlock()
		if h != nil {
			h(ev)
		}
	}
}

// SetEventHandler installs h as the event sink. Passing nil detaches the
// current handler; events emitted while no handler is set are discarded.
func (w *Wallet) SetEventHandler(h func(engine.Event)) {
	w.mu.Lock()
	w.handler = h
	w.mu.Unlock()
}

// submit queues fn on the worker and blocks until it has run. The read
// lock spans only the destroyed check and the send, so Destroy's close of
// the ops channel cannot race a send.
func (w *Wallet) submit(fn func(context.Context)) error {
	done := make(chan struct{})

	w.mu.RLock()
	if w.destroyed {
		w.mu.RUnlock()
		return ErrDestroyed
	}
	w.ops <- func() {
		fn(context.Background())
		close(done)
	}
	w.mu.RUnlock()

	<-done
	return nil
}

// call runs fn on the worker and returns its result to the blocked caller.
func call[T any](w *Wallet, fn func(context.Context) (T, error)) (T, error) {
	var (
		v   T
		err error
	)
	if serr := w.submit(func(ctx context.Context) {
		v, err = fn(ctx)
	}); serr != nil {
		return v, serr
	}
	return v, err
}

// AddBaseNodePeer registers a base node peer with the engine.
func (w *Wallet) AddBaseNodePeer(pub keys.PublicKey, address string) error {
	_, err := call(w, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, w.eng.AddBaseNodePeer(ctx, pub, address)
	})
	return err
}

// Balance returns the spendable balance.
func (w *Wallet) Balance() (uint64, error) {
	return call(w, w.eng.Balance)
}

// SendTransaction starts a payment to dest and returns its transaction ID.
func (w *Wallet) SendTransaction(dest keys.PublicKey, amount, feePerGram uint64) (engine.TxID, error) {
	return call(w, func(ctx context.Context) (engine.TxID, error) {
		return w.eng.SendTransaction(ctx, dest, amount, feePerGram)
	})
}

// Contacts snapshots the wallet's contacts.
func (w *Wallet) Contacts() ([]engine.Contact, error) {
	return call(w, w.eng.Contacts)
}

// SaveContact inserts or updates a contact.
func (w *Wallet) SaveContact(c engine.Contact) error {
	_, err := call(w, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, w.eng.SaveContact(ctx, c)
	})
	return err
}

// RemoveContact deletes the contact with the given public key.
func (w *Wallet) RemoveContact(pub keys.PublicKey) error {
	_, err := call(w, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, w.eng.RemoveContact(ctx, pub)
	})
	return err
}

// CompletedTransactions snapshots the completed transactions.
func (w *Wallet) CompletedTransactions() ([]engine.CompletedTransaction, error) {
	return call(w, w.eng.CompletedTransactions)
}

// PendingInboundTransactions snapshots the pending inbound transactions.
func (w *Wallet) PendingInboundTransactions() ([]engine.InboundTransaction, error) {
	return call(w, w.eng.PendingInboundTransactions)
}

// PendingOutboundTransactions snapshots the pending outbound transactions.
func (w *Wallet) PendingOutboundTransactions() ([]engine.OutboundTransaction, error) {
	return call(w, w.eng.PendingOutboundTransactions)
}

// CompletedTransactionByID scans a fresh snapshot for the given ID.
func (w *Wallet) CompletedTransactionByID(id engine.TxID) (engine.CompletedTransaction, error) {
	txs, err := w.CompletedTransactions()
	if err != nil {
		return engine.CompletedTransaction{}, err
	}
	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return engine.CompletedTransaction{}, engine.ErrTransactionNotFound()
}

// PendingInboundTransactionByID scans a fresh snapshot for the given ID.
func (w *Wallet) PendingInboundTransactionByID(id engine.TxID) (engine.InboundTransaction, error) {
	txs, err := w.PendingInboundTransactions()
	if err != nil {
		return engine.InboundTransaction{}, err
	}
	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return engine.InboundTransaction{}, engine.ErrTransactionNotFound()
}

// PendingOutboundTransactionByID scans a fresh snapshot for the given ID.
func (w *Wallet) PendingOutboundTransactionByID(id engine.TxID) (engine.OutboundTransaction, error) {
	txs, err := w.PendingOutboundTransactions()
	if err != nil {
		return engine.OutboundTransaction{}, err
	}
	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return engine.OutboundTransaction{}, engine.ErrTransactionNotFound()
}

// GenerateTestData seeds the engine with sample data.
func (w *Wallet) GenerateTestData() error {
	_, err := call(w, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, w.eng.GenerateTestData(ctx)
	})
	return err
}

// Destroy shuts the engine down and stops the facade. It blocks until the
// worker and dispatcher have exited. Calling Destroy more than once is a
// no-op; the facade must not be used afterwards.
func (w *Wallet) Destroy() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.destroyed = true
	close(w.ops)
	w.mu.Unlock()

	<-w.workerDone

	// Shutdown failures have nowhere to go at this point; log and move on.
	if err := w.eng.Shutdown(context.Background()); err != nil {
		w.log.Warn("engine shutdown failed", zap.Error(err))
	}

	// Shutdown closes the event stream, which ends the dispatcher.
	<-w.dispatchDone
}
