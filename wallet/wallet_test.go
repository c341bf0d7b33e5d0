package wallet

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/keys"
)

// fakeEngine records calls and serves canned data. Its Events channel is
// closed by Shutdown, matching the engine contract.
type fakeEngine struct {
	mu        sync.Mutex
	balance   uint64
	contacts  []engine.Contact
	completed []engine.CompletedTransaction
	inbound   []engine.InboundTransaction
	outbound  []engine.OutboundTransaction
	nextID    engine.TxID
	sendErr   error
	shutErr   error
	events    chan engine.Event
	shutdowns int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{nextID: 1, events: make(chan engine.Event, 16)}
}

func (f *fakeEngine) AddBaseNodePeer(_ context.Context, _ keys.PublicKey, _ string) error {
	return nil
}

func (f *fakeEngine) Balance(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance, nil
}

func (f *fakeEngine) SendTransaction(_ context.Context, dest keys.PublicKey, amount, fee uint64) (engine.TxID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	id := f.nextID
	f.nextID++
	f.outbound = append(f.outbound, engine.OutboundTransaction{
		ID: id, Destination: dest, Amount: amount, Fee: fee,
	})
	return id, nil
}

func (f *fakeEngine) Contacts(context.Context) ([]engine.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]engine.Contact(nil), f.contacts...), nil
}

func (f *fakeEngine) SaveContact(_ context.Context, c engine.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, have := range f.contacts {
		if have.PublicKey.Equal(c.PublicKey) {
			f.contacts[i] = c
			return nil
		}
	}
	f.contacts = append(f.contacts, c)
	return nil
}

func (f *fakeEngine) RemoveContact(_ context.Context, pub keys.PublicKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, have := range f.contacts {
		if have.PublicKey.Equal(pub) {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return engine.ErrValueNotFound("contact")
}

func (f *fakeEngine) CompletedTransactions(context.Context) ([]engine.CompletedTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]engine.CompletedTransaction(nil), f.completed...), nil
}

func (f *fakeEngine) PendingInboundTransactions(context.Context) ([]engine.InboundTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]engine.InboundTransaction(nil), f.inbound...), nil
}

func (f *fakeEngine) PendingOutboundTransactions(context.Context) ([]engine.OutboundTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]engine.OutboundTransaction(nil), f.outbound...), nil
}

func (f *fakeEngine) GenerateTestData(context.Context) error { return nil }

func (f *fakeEngine) Events() <-chan engine.Event { return f.events }

func (f *fakeEngine) Shutdown(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdowns++
	if f.shutdowns == 1 {
		close(f.events)
	}
	return f.shutErr
}

func (f *fakeEngine) emit(ev engine.Event) { f.events <- ev }

func testConfig(t *testing.T) *Config {
	t.Helper()
	secret := keys.GeneratePrivateKey()
	cfg, err := NewConfig("/ip4/127.0.0.1/tcp/21443", "wallet", t.TempDir(), secret)
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_Validation(t *testing.T) {
	secret := keys.GeneratePrivateKey()

	_, err := NewConfig("", "db", "path", secret)
	require.ErrorIs(t, err, ErrMissingConfigValue)

	_, err = NewConfig("/ip4/127.0.0.1/tcp/1", "", "path", secret)
	require.ErrorIs(t, err, ErrMissingConfigValue)

	_, err = NewConfig("/ip4/127.0.0.1/tcp/1", "db", "", secret)
	require.ErrorIs(t, err, ErrMissingConfigValue)

	_, err = NewConfig("not a multiaddr", "db", "path", secret)
	var addrErr *engine.AddressError
	require.ErrorAs(t, err, &addrErr)
	require.Equal(t, "not a multiaddr", addrErr.Address)

	cfg, err := NewConfig("/ip4/127.0.0.1/tcp/21443", "db", "path", secret)
	require.NoError(t, err)
	require.True(t, cfg.PublicKey().Equal(secret.Public()))
}

func TestWallet_Operations(t *testing.T) {
	eng := newFakeEngine()
	eng.balance = 5000
	w := New(testConfig(t), eng)
	defer w.Destroy()

	bal, err := w.Balance()
	require.NoError(t, err)
	require.Equal(t, uint64(5000), bal)

	peer := keys.GeneratePrivateKey()
	dest := peer.Public()

	require.NoError(t, w.SaveContact(engine.Contact{Alias: "bob", PublicKey: dest}))
	contacts, err := w.Contacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.Equal(t, "bob", contacts[0].Alias)

	require.NoError(t, w.RemoveContact(dest))
	contacts, err = w.Contacts()
	require.NoError(t, err)
	require.Empty(t, contacts)

	id, err := w.SendTransaction(dest, 100, 2)
	require.NoError(t, err)

	tx, err := w.PendingOutboundTransactionByID(id)
	require.NoError(t, err)
	require.Equal(t, uint64(100), tx.Amount)
	require.True(t, tx.Destination.Equal(dest))
}

func TestWallet_ByIDMisses(t *testing.T) {
	w := New(testConfig(t), newFakeEngine())
	defer w.Destroy()

	var tsErr *engine.TransactionServiceError

	_, err := w.CompletedTransactionByID(42)
	require.ErrorAs(t, err, &tsErr)
	require.Equal(t, engine.TransactionServiceNotFound, tsErr.Kind)

	_, err = w.PendingInboundTransactionByID(42)
	require.ErrorAs(t, err, &tsErr)

	_, err = w.PendingOutboundTransactionByID(42)
	require.ErrorAs(t, err, &tsErr)
}

func TestWallet_SendErrorPassthrough(t *testing.T) {
	eng := newFakeEngine()
	eng.sendErr = engine.ErrNotEnoughFunds()
	w := New(testConfig(t), eng)
	defer w.Destroy()

	peer := keys.GeneratePrivateKey()

	_, err := w.SendTransaction(peer.Public(), 1_000_000, 2)
	var ome *engine.OutputManagerError
	require.ErrorAs(t, err, &ome)
	require.Equal(t, engine.OutputManagerNotEnoughFunds, ome.Kind)
}

func TestWallet_EventsReachHandlerInOrder(t *testing.T) {
	eng := newFakeEngine()
	w := New(testConfig(t), eng)

	got := make(chan engine.EventKind, 4)
	w.SetEventHandler(func(ev engine.Event) { got <- ev.Kind })

	eng.emit(engine.Event{Kind: engine.EventReceivedTransaction, Inbound: &engine.InboundTransaction{ID: 1}})
	eng.emit(engine.Event{Kind: engine.EventReceivedTransactionReply, Completed: &engine.CompletedTransaction{ID: 1}})

	require.Equal(t, engine.EventReceivedTransaction, <-got)
	require.Equal(t, engine.EventReceivedTransactionReply, <-got)

	w.Destroy()
}

func TestWallet_DestroyIdempotentAndGuards(t *testing.T) {
	eng := newFakeEngine()
	w := New(testConfig(t), eng)

	w.Destroy()
	w.Destroy()
	require.Equal(t, 1, eng.shutdowns)

	_, err := w.Balance()
	require.ErrorIs(t, err, ErrDestroyed)
	require.ErrorIs(t, w.GenerateTestData(), ErrDestroyed)
}

func TestWallet_ConcurrentCallsSerialized(t *testing.T) {
	eng := newFakeEngine()
	w := New(testConfig(t), eng)
	defer w.Destroy()

	peer := keys.GeneratePrivateKey()
	dest := peer.Public()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.SendTransaction(dest, 10, 1)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	txs, err := w.PendingOutboundTransactions()
	require.NoError(t, err)
	require.Len(t, txs, 20)

	seen := make(map[engine.TxID]bool, len(txs))
	for _, tx := range txs {
		require.False(t, seen[tx.ID], "transaction IDs must be unique")
		seen[tx.ID] = true
	}
}
