package ffi

import (
	"testing"
	"time"

	"github.com/halcyoncore/wallet-bridge/errors"
	"github.com/halcyoncore/wallet-bridge/handle"
)

const eventWait = 5 * time.Second

// makeWallet brings up a wallet through the full boundary path and
// returns its wallet and public key handles.
func makeWallet(t *testing.T, address string) (wlt, pub handle.Handle) {
	t.Helper()

	priv := PrivateKeyGenerate()
	defer PrivateKeyDestroy(priv)

	cfg := CommsConfigCreate(address, "wallet", t.TempDir(), priv)
	if cfg == handle.Nil {
		t.Fatalf("config create failed: %+v", LastError())
	}
	defer CommsConfigDestroy(cfg)

	wlt = WalletCreate(cfg)
	if wlt == handle.Nil {
		t.Fatalf("wallet create failed: %+v", LastError())
	}
	pub = PublicKeyFromPrivateKey(priv)
	return wlt, pub
}

func TestEndToEnd(t *testing.T) {
	alice, alicePub := makeWallet(t, "/ip4/127.0.0.1/tcp/21801")
	bob, bobPub := makeWallet(t, "/ip4/127.0.0.1/tcp/21802")
	defer func() {
		PublicKeyDestroy(alicePub)
		PublicKeyDestroy(bobPub)
		WalletDestroy(alice)
		WalletDestroy(bob)
	}()

	if !WalletAddBaseNodePeer(alice, bobPub, "/ip4/127.0.0.1/tcp/21802") {
		t.Fatalf("add peer failed: %+v", LastError())
	}
	if !WalletAddBaseNodePeer(bob, alicePub, "/ip4/127.0.0.1/tcp/21801") {
		t.Fatalf("add peer failed: %+v", LastError())
	}

	// Seeded wallets expose exactly four contacts.
	if !WalletGenerateTestData(alice) {
		t.Fatalf("test data failed: %+v", LastError())
	}
	contacts := WalletGetContacts(alice)
	if contacts == handle.Nil {
		t.Fatal("contacts query failed")
	}
	if got := ContactsGetLength(contacts); got != 4 {
		t.Fatalf("seeded contacts = %d, want 4", got)
	}
	first := ContactsGetAt(contacts, 0)
	if first == handle.Nil || ContactGetAlias(first) == "" {
		t.Fatal("seeded contact element invalid")
	}
	ContactDestroy(first)
	ContactsDestroy(contacts)

	// An unseeded wallet yields valid zero-length collections.
	empty := WalletGetContacts(bob)
	if empty == handle.Nil {
		t.Fatal("empty contacts query must return a valid handle")
	}
	if got := ContactsGetLength(empty); got != 0 {
		t.Fatalf("empty contacts length = %d", got)
	}
	if ContactsGetAt(empty, 0) != handle.Nil {
		t.Fatal("get_at on empty collection must be nil")
	}
	ContactsDestroy(empty)

	// Manual contact management on bob's side.
	c := ContactCreate("alice", alicePub)
	if !WalletAddContact(bob, c) {
		t.Fatalf("add contact failed: %+v", LastError())
	}
	if !WalletRemoveContact(bob, c) {
		t.Fatalf("remove contact failed: %+v", LastError())
	}
	if WalletRemoveContact(bob, c) {
		t.Fatal("removing a missing contact must fail")
	}
	ContactDestroy(c)

	// Bob listens for inbound transactions; his reply slot stays empty
	// and those events must be dropped silently.
	bobCb := CallbacksCreate()
	inboundHandles := make(chan handle.Handle, 4)
	CallbacksRegisterReceivedTransaction(bobCb, func(h handle.Handle) {
		inboundHandles <- h
	})
	if !WalletSetCallbacks(bob, bobCb) {
		t.Fatal("set callbacks failed")
	}

	aliceCb := CallbacksCreate()
	replyHandles := make(chan handle.Handle, 4)
	CallbacksRegisterReceivedTransactionReply(aliceCb, func(h handle.Handle) {
		replyHandles <- h
	})
	if !WalletSetCallbacks(alice, aliceCb) {
		t.Fatal("set callbacks failed")
	}

	balBefore := WalletGetBalance(alice)
	if balBefore == 0 {
		t.Fatal("seeded balance must be nonzero")
	}

	id := WalletSendTransaction(alice, bobPub, 500, 20)
	if id == 0 {
		t.Fatalf("send failed: %+v", LastError())
	}

	select {
	case h := <-inboundHandles:
		if h == handle.Nil {
			t.Fatal("callback received nil handle")
		}
		if got := PendingInboundTransactionGetTransactionID(h); got != id {
			t.Fatalf("inbound id = %d, want %d", got, id)
		}
		if got := PendingInboundTransactionGetAmount(h); got != 500 {
			t.Fatalf("inbound amount = %d", got)
		}
		src := PendingInboundTransactionGetSource(h)
		if src == handle.Nil {
			t.Fatal("inbound source handle invalid")
		}
		PublicKeyDestroy(src)
		PendingInboundTransactionDestroy(h)
	case <-time.After(eventWait):
		t.Fatal("inbound callback never fired")
	}

	select {
	case h := <-replyHandles:
		if got := CompletedTransactionGetTransactionID(h); got != id {
			t.Fatalf("reply id = %d, want %d", got, id)
		}
		CompletedTransactionDestroy(h)
	case <-time.After(eventWait):
		t.Fatal("reply callback never fired")
	}

	// Exactly one delivery per event.
	select {
	case <-inboundHandles:
		t.Fatal("inbound callback fired twice")
	case <-time.After(100 * time.Millisecond):
	}

	if got := WalletGetBalance(alice); got != balBefore-520 {
		t.Fatalf("balance = %d, want %d", got, balBefore-520)
	}

	// The completed transaction is queryable by ID on alice's side.
	byID := WalletGetCompletedTransactionByID(alice, id)
	if byID == handle.Nil {
		t.Fatal("completed by-id lookup failed")
	}
	if got := CompletedTransactionGetAmount(byID); got != 500 {
		t.Fatalf("completed amount = %d", got)
	}
	if got := CompletedTransactionGetFee(byID); got != 20 {
		t.Fatalf("completed fee = %d", got)
	}
	dest := CompletedTransactionGetDestination(byID)
	if dest == handle.Nil {
		t.Fatal("completed destination invalid")
	}
	PublicKeyDestroy(dest)
	CompletedTransactionDestroy(byID)

	// And on bob's side as a pending inbound.
	bobByID := WalletGetPendingInboundTransactionByID(bob, id)
	if bobByID == handle.Nil {
		t.Fatal("inbound by-id lookup failed")
	}
	PendingInboundTransactionDestroy(bobByID)

	ClearLastError()
	if h := WalletGetCompletedTransactionByID(alice, 0xdeadbeef); h != handle.Nil {
		t.Fatal("missing id must yield nil")
	}
	if rec := LastError(); rec.Code != errors.CodeTransactionNotFound {
		t.Fatalf("missing id last error = %d, want %d", rec.Code, errors.CodeTransactionNotFound)
	}

	CallbacksDestroy(bobCb)
	CallbacksDestroy(aliceCb)
}

// A destroyed callback table must never be invoked again, even by a
// wallet that is still bound to it.
func TestCallbacksDestroyStopsDispatch(t *testing.T) {
	alice, alicePub := makeWallet(t, "/ip4/127.0.0.1/tcp/21820")
	bob, bobPub := makeWallet(t, "/ip4/127.0.0.1/tcp/21821")
	defer func() {
		PublicKeyDestroy(alicePub)
		PublicKeyDestroy(bobPub)
		WalletDestroy(alice)
		WalletDestroy(bob)
	}()

	if !WalletGenerateTestData(alice) {
		t.Fatalf("test data failed: %+v", LastError())
	}

	cb := CallbacksCreate()
	fired := make(chan handle.Handle, 1)
	CallbacksRegisterReceivedTransaction(cb, func(h handle.Handle) {
		fired <- h
	})
	if !WalletSetCallbacks(bob, cb) {
		t.Fatal("set callbacks failed")
	}

	CallbacksDestroy(cb)

	id := WalletSendTransaction(alice, bobPub, 100, 20)
	if id == 0 {
		t.Fatalf("send failed: %+v", LastError())
	}

	// The transaction itself still lands on bob's side.
	byID := WalletGetPendingInboundTransactionByID(bob, id)
	if byID == handle.Nil {
		t.Fatal("inbound transaction missing")
	}
	PendingInboundTransactionDestroy(byID)

	select {
	case <-fired:
		t.Fatal("callback invoked after its table was destroyed")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWalletDestroyInvalidatesHandle(t *testing.T) {
	w, pub := makeWallet(t, "/ip4/127.0.0.1/tcp/21810")
	PublicKeyDestroy(pub)

	WalletDestroy(w)
	WalletDestroy(w) // second destroy is a no-op

	if WalletGetBalance(w) != 0 {
		t.Fatal("balance on destroyed wallet")
	}
	if WalletGetContacts(w) != handle.Nil {
		t.Fatal("contacts on destroyed wallet")
	}
	if WalletGenerateTestData(w) {
		t.Fatal("testdata on destroyed wallet")
	}
}

// Collections are snapshots: wallet activity after the query must not
// show through an existing collection handle.
func TestCollectionSnapshotIsolation(t *testing.T) {
	w, pub := makeWallet(t, "/ip4/127.0.0.1/tcp/21811")
	defer func() {
		PublicKeyDestroy(pub)
		WalletDestroy(w)
	}()

	before := WalletGetContacts(w)
	if got := ContactsGetLength(before); got != 0 {
		t.Fatalf("fresh wallet contacts = %d", got)
	}

	if !WalletGenerateTestData(w) {
		t.Fatalf("test data failed: %+v", LastError())
	}

	if got := ContactsGetLength(before); got != 0 {
		t.Fatalf("snapshot grew to %d after seeding", got)
	}
	after := WalletGetContacts(w)
	if got := ContactsGetLength(after); got != 4 {
		t.Fatalf("new snapshot = %d, want 4", got)
	}

	ContactsDestroy(before)
	ContactsDestroy(after)
}
