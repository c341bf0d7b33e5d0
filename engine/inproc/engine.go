package inproc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	ma "github.com/multiformats/go-multiaddr"
	"go.uber.org/zap"

	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/keys"
)

// ErrShutdown is returned by operations issued after Shutdown.
var ErrShutdown = errors.New("inproc: engine is shut down")

const eventBuffer = 64

// Config carries everything an in-process engine needs.
type Config struct {
	Secret        keys.PrivateKey
	Address       ma.Multiaddr
	DatabaseName  string
	DatastorePath string

	// Network is the loopback registry to deliver transactions over. May
	// be nil, in which case every send stays pending outbound.
	Network *Network

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Engine is an in-process implementation of engine.Engine. Contacts and
// peers live in SQLite; balance and transaction sets live in memory.
type Engine struct {
	pub   keys.PublicKey
	log   *zap.Logger
	store *store
	net   *Network

	mu        sync.Mutex
	closed    bool
	balance   uint64
	nextID    engine.TxID
	completed []engine.CompletedTransaction
	inbound   []engine.InboundTransaction
	outbound  []engine.OutboundTransaction

	events  chan engine.Event
	done    chan struct{}
	senders sync.WaitGroup
}

var _ engine.Engine = (*Engine)(nil)

// New opens the engine's store and registers it on the network. The
// datastore path is created if absent.
func New(cfg Config) (*Engine, error) {
	if cfg.DatabaseName == "" || cfg.DatastorePath == "" {
		return nil, errors.New("inproc: database name and datastore path are required")
	}

	st, err := openStore(cfg.DatastorePath, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		pub:    cfg.Secret.Public(),
		log:    log,
		store:  st,
		net:    cfg.Network,
		nextID: 1,
		events: make(chan engine.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	if e.net != nil {
		e.net.register(e)
	}

	e.log.Debug("engine started",
		zap.String("public_key", e.pub.Hex()),
		zap.String("database", cfg.DatabaseName))
	return e, nil
}

// PublicKey returns the engine's node identity.
func (e *Engine) PublicKey() keys.PublicKey { return e.pub }

func (e *Engine) AddBaseNodePeer(ctx context.Context, pub keys.PublicKey, address string) error {
	if e.isClosed() {
		return ErrShutdown
	}
	if _, err := ma.NewMultiaddr(address); err != nil {
		return &engine.AddressError{Address: address, Cause: err}
	}
	return e.store.savePeer(ctx, pub.Hex(), address)
}

func (e *Engine) Balance(context.Context) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return 0, ErrShutdown
	}
	return e.balance, nil
}

// SendTransaction charges amount plus fee against the balance, records a
// pending outbound transaction and attempts in-process delivery. The fee
// model is flat: feePerGram is charged as the whole fee.
func (e *Engine) SendTransaction(_ context.Context, dest keys.PublicKey, amount, feePerGram uint64) (engine.TxID, error) {
	fee := feePerGram

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return 0, ErrShutdown
	}
	// Checked without summing so amount+fee cannot wrap past the guard.
	if amount > e.balance || fee > e.balance-amount {
		e.mu.Unlock()
		return 0, engine.ErrNotEnoughFunds()
	}
	e.balance -= amount + fee

	id := e.nextID
	e.nextID++
	e.outbound = append(e.outbound, engine.OutboundTransaction{
		ID:          id,
		Destination: dest,
		Amount:      amount,
		Fee:         fee,
		Timestamp:   time.Now().UTC(),
	})
	e.mu.Unlock()

	if e.net != nil {
		if peer, ok := e.net.lookup(dest); ok && peer.receive(e.pub, id, amount) {
			e.completeOutbound(id)
		}
	}
	return id, nil
}

// receive lands an inbound transaction from a peer and reports whether it
// was accepted. A shut-down engine rejects delivery.
func (e *Engine) receive(source keys.PublicKey, id engine.TxID, amount uint64) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	in := engine.InboundTransaction{
		ID:        id,
		Source:    source,
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
	e.inbound = append(e.inbound, in)
	e.mu.Unlock()

	e.emit(engine.Event{Kind: engine.EventReceivedTransaction, Inbound: &in})
	return true
}

// completeOutbound moves a pending outbound transaction to the completed
// set after the peer's reply.
func (e *Engine) completeOutbound(id engine.TxID) {
	e.mu.Lock()
	var done *engine.CompletedTransaction
	for i, tx := range e.outbound {
		if tx.ID == id {
			e.outbound = append(e.outbound[:i], e.outbound[i+1:]...)
			c := engine.CompletedTransaction{
				ID:          tx.ID,
				Destination: tx.Destination,
				Amount:      tx.Amount,
				Fee:         tx.Fee,
				Timestamp:   time.Now().UTC(),
			}
			e.completed = append(e.completed, c)
			done = &c
			break
		}
	}
	e.mu.Unlock()

	if done != nil {
		e.emit(engine.Event{Kind: engine.EventReceivedTransactionReply, Completed: done})
	}
}

func (e *Engine) Contacts(ctx context.Context) ([]engine.Contact, error) {
	if e.isClosed() {
		return nil, ErrShutdown
	}
	rows, err := e.store.contacts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]engine.Contact, 0, len(rows))
	for _, r := range rows {
		pub, err := keys.PublicKeyFromHex(r.pubHex)
		if err != nil {
			return nil, fmt.Errorf("stored contact %q: %w", r.alias, err)
		}
		out = append(out, engine.Contact{Alias: r.alias, PublicKey: pub})
	}
	return out, nil
}

func (e *Engine) SaveContact(ctx context.Context, c engine.Contact) error {
	if e.isClosed() {
		return ErrShutdown
	}
	return e.store.saveContact(ctx, c.PublicKey.Hex(), c.Alias)
}

func (e *Engine) RemoveContact(ctx context.Context, pub keys.PublicKey) error {
	if e.isClosed() {
		return ErrShutdown
	}
	removed, err := e.store.removeContact(ctx, pub.Hex())
	if err != nil {
		return err
	}
	if !removed {
		return engine.ErrValueNotFound("contact " + pub.Hex())
	}
	return nil
}

func (e *Engine) CompletedTransactions(context.Context) ([]engine.CompletedTransaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrShutdown
	}
	return append([]engine.CompletedTransaction(nil), e.completed...), nil
}

func (e *Engine) PendingInboundTransactions(context.Context) ([]engine.InboundTransaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrShutdown
	}
	return append([]engine.InboundTransaction(nil), e.inbound...), nil
}

func (e *Engine) PendingOutboundTransactions(context.Context) ([]engine.OutboundTransaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrShutdown
	}
	return append([]engine.OutboundTransaction(nil), e.outbound...), nil
}

// GenerateTestData seeds a usable wallet: four contacts, a spendable
// balance, one completed, one pending inbound and one pending outbound
// transaction.
func (e *Engine) GenerateTestData(ctx context.Context) error {
	if e.isClosed() {
		return ErrShutdown
	}

	aliases := []string{"alice", "bob", "carol", "dave"}
	peers := make([]keys.PublicKey, 0, len(aliases))
	for _, alias := range aliases {
		pub := keys.GeneratePrivateKey().Public()
		if err := e.store.saveContact(ctx, pub.Hex(), alias); err != nil {
			return err
		}
		peers = append(peers, pub)
	}

	now := time.Now().UTC()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrShutdown
	}
	e.balance += 25_000

	id := e.nextID
	e.nextID += 3
	e.completed = append(e.completed, engine.CompletedTransaction{
		ID:          id,
		Destination: peers[0],
		Amount:      1_000,
		Fee:         20,
		Timestamp:   now.Add(-2 * time.Hour),
	})
	e.inbound = append(e.inbound, engine.InboundTransaction{
		ID:        id + 1,
		Source:    peers[1],
		Amount:    2_500,
		Timestamp: now.Add(-time.Hour),
	})
	e.outbound = append(e.outbound, engine.OutboundTransaction{
		ID:          id + 2,
		Destination: peers[2],
		Amount:      750,
		Fee:         20,
		Timestamp:   now,
	})
	e.mu.Unlock()

	e.log.Debug("seeded test data", zap.Int("contacts", len(aliases)))
	return nil
}

func (e *Engine) Events() <-chan engine.Event { return e.events }

func (e *Engine) Shutdown(context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()

	if e.net != nil {
		e.net.unregister(e.pub)
	}

	// Release any emitter blocked on a full buffer, wait for all of them
	// to leave, then close the stream.
	close(e.done)
	e.senders.Wait()
	close(e.events)

	return e.store.close()
}

func (e *Engine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// emit delivers the event, blocking when the buffer is full until the
// consumer drains it or the engine shuts down. Every event is delivered
// exactly once while the engine is running; only shutdown discards.
func (e *Engine) emit(ev engine.Event) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.senders.Add(1)
	e.mu.Unlock()
	defer e.senders.Done()

	select {
	case e.events <- ev:
	case <-e.done:
	}
}
