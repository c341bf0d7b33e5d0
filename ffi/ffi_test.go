package ffi

import (
	"bytes"
	"testing"

	"github.com/halcyoncore/wallet-bridge/errors"
	"github.com/halcyoncore/wallet-bridge/handle"
)

func TestByteVectorLifecycle(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}

	h := ByteVectorCreate(data, uint32(len(data)))
	if h == handle.Nil {
		t.Fatal("create failed")
	}
	if got := ByteVectorGetLength(h); got != 5 {
		t.Fatalf("length = %d, want 5", got)
	}
	for i := uint32(0); i < 5; i++ {
		if got := ByteVectorGetAt(h, i); got != byte(i+1) {
			t.Fatalf("get_at(%d) = %d, want %d", i, got, i+1)
		}
	}
	// Positions at or beyond the length read as zero.
	if got := ByteVectorGetAt(h, 5); got != 0 {
		t.Fatalf("get_at(5) = %d, want 0", got)
	}
	if got := ByteVectorGetAt(h, 100); got != 0 {
		t.Fatalf("get_at(100) = %d, want 0", got)
	}

	// The vector is a copy; mutating the source must not show through.
	data[0] = 99
	if got := ByteVectorGetAt(h, 0); got != 1 {
		t.Fatalf("get_at(0) = %d after source mutation, want 1", got)
	}

	ByteVectorDestroy(h)
	if got := ByteVectorGetLength(h); got != 0 {
		t.Fatalf("length after destroy = %d, want 0", got)
	}
	ByteVectorDestroy(h) // second destroy is a no-op
}

func TestByteVectorCreate_Errors(t *testing.T) {
	ClearLastError()

	if h := ByteVectorCreate([]byte{1, 2}, 5); h != handle.Nil {
		t.Fatal("count beyond data must fail")
	}
	if rec := LastError(); rec.Code != errors.CodeByteArrayLength {
		t.Fatalf("last error code = %d, want %d", rec.Code, errors.CodeByteArrayLength)
	}

	// nil data always fails, even with a zero count.
	if h := ByteVectorCreate(nil, 0); h != handle.Nil {
		t.Fatal("nil data must fail")
	}

	// A zero-count copy of a non-nil slice is the valid empty vector.
	h := ByteVectorCreate([]byte{}, 0)
	if h == handle.Nil {
		t.Fatal("empty vector must be valid")
	}
	if got := ByteVectorGetLength(h); got != 0 {
		t.Fatalf("empty vector length = %d", got)
	}
	if got := ByteVectorGetAt(h, 0); got != 0 {
		t.Fatalf("empty vector get_at = %d", got)
	}
	ByteVectorDestroy(h)
}

func TestKeyRoundTrips(t *testing.T) {
	priv := PrivateKeyGenerate()
	if priv == handle.Nil {
		t.Fatal("generate failed")
	}

	privBytes := PrivateKeyGetBytes(priv)
	if got := ByteVectorGetLength(privBytes); got != 32 {
		t.Fatalf("private key export length = %d, want 32", got)
	}

	// Re-import the exported material and check both copies derive the
	// same public key.
	reimported := PrivateKeyCreate(privBytes)
	if reimported == handle.Nil {
		t.Fatal("re-import failed")
	}

	pub1 := PublicKeyFromPrivateKey(priv)
	pub2 := PublicKeyFromPrivateKey(reimported)
	b1 := PublicKeyGetBytes(pub1)
	b2 := PublicKeyGetBytes(pub2)
	if got := ByteVectorGetLength(b1); got != 32 {
		t.Fatalf("public key export length = %d, want 32", got)
	}

	v1 := make([]byte, 32)
	v2 := make([]byte, 32)
	for i := uint32(0); i < 32; i++ {
		v1[i] = ByteVectorGetAt(b1, i)
		v2[i] = ByteVectorGetAt(b2, i)
	}
	if !bytes.Equal(v1, v2) {
		t.Fatal("derived public keys differ")
	}

	// Public key bytes round trip through PublicKeyCreate.
	pub3 := PublicKeyCreate(b1)
	if pub3 == handle.Nil {
		t.Fatal("public key import failed")
	}

	for _, h := range []handle.Handle{b1, b2, privBytes} {
		ByteVectorDestroy(h)
	}
	PublicKeyDestroy(pub1)
	PublicKeyDestroy(pub2)
	PublicKeyDestroy(pub3)
	PrivateKeyDestroy(priv)
	PrivateKeyDestroy(reimported)
}

func TestKeyHexErrors(t *testing.T) {
	ClearLastError()
	if h := PublicKeyFromHex("abc"); h != handle.Nil {
		t.Fatal("short hex must fail")
	}
	if rec := LastError(); rec.Code != errors.CodeHexLength {
		t.Fatalf("last error code = %d, want %d", rec.Code, errors.CodeHexLength)
	}

	ClearLastError()
	bad := "zz" + "00112233445566778899aabbccddeeff00112233445566778899aabbccddee"
	if h := PrivateKeyFromHex(bad); h != handle.Nil {
		t.Fatal("invalid hex character must fail")
	}
	if rec := LastError(); rec.Code != errors.CodeHexInvalidCharacter {
		t.Fatalf("last error code = %d, want %d", rec.Code, errors.CodeHexInvalidCharacter)
	}
}

func TestContactLifecycle(t *testing.T) {
	priv := PrivateKeyGenerate()
	pub := PublicKeyFromPrivateKey(priv)

	c := ContactCreate("dana", pub)
	if c == handle.Nil {
		t.Fatal("contact create failed")
	}
	if got := ContactGetAlias(c); got != "dana" {
		t.Fatalf("alias = %q", got)
	}

	// The returned key is a fresh handle; destroying it leaves the
	// contact intact.
	cpub := ContactGetPublicKey(c)
	if cpub == handle.Nil || cpub == pub {
		t.Fatalf("contact key handle = %v, want fresh handle", cpub)
	}
	PublicKeyDestroy(cpub)
	if got := ContactGetAlias(c); got != "dana" {
		t.Fatalf("alias after key destroy = %q", got)
	}

	if h := ContactCreate("", pub); h != handle.Nil {
		t.Fatal("empty alias must fail")
	}

	ContactDestroy(c)
	PublicKeyDestroy(pub)
	PrivateKeyDestroy(priv)
}

func TestTypeConfusionRejected(t *testing.T) {
	bv := ByteVectorCreate([]byte{1}, 1)

	// A byte vector handle is not a key, contact or wallet.
	if PublicKeyDestroy(bv); ByteVectorGetLength(bv) != 1 {
		t.Fatal("destroy through the wrong type must not release the value")
	}
	if h := PublicKeyFromPrivateKey(bv); h != handle.Nil {
		t.Fatal("byte vector accepted as private key")
	}
	if got := ContactGetAlias(bv); got != "" {
		t.Fatalf("alias via byte vector handle = %q", got)
	}
	if got := WalletGetBalance(bv); got != 0 {
		t.Fatalf("balance via byte vector handle = %d", got)
	}

	ByteVectorDestroy(bv)
}

func TestNilHandleSafety(t *testing.T) {
	// Every destroy is a no-op and every accessor degrades to a zero
	// value on the nil handle.
	ByteVectorDestroy(handle.Nil)
	PrivateKeyDestroy(handle.Nil)
	PublicKeyDestroy(handle.Nil)
	ContactDestroy(handle.Nil)
	ContactsDestroy(handle.Nil)
	CompletedTransactionDestroy(handle.Nil)
	PendingInboundTransactionDestroy(handle.Nil)
	PendingOutboundTransactionDestroy(handle.Nil)
	CompletedTransactionsDestroy(handle.Nil)
	PendingInboundTransactionsDestroy(handle.Nil)
	PendingOutboundTransactionsDestroy(handle.Nil)
	CommsConfigDestroy(handle.Nil)
	CallbacksDestroy(handle.Nil)
	WalletDestroy(handle.Nil)
	FreeString("")

	if ByteVectorGetLength(handle.Nil) != 0 {
		t.Fatal("byte vector length on nil")
	}
	if ByteVectorGetAt(handle.Nil, 0) != 0 {
		t.Fatal("byte vector get_at on nil")
	}
	if ContactGetAlias(handle.Nil) != "" {
		t.Fatal("contact alias on nil")
	}
	if ContactGetPublicKey(handle.Nil) != handle.Nil {
		t.Fatal("contact key on nil")
	}
	if ContactsGetLength(handle.Nil) != 0 {
		t.Fatal("contacts length on nil")
	}
	if ContactsGetAt(handle.Nil, 0) != handle.Nil {
		t.Fatal("contacts get_at on nil")
	}
	if CompletedTransactionGetTransactionID(handle.Nil) != 0 {
		t.Fatal("completed tx id on nil")
	}
	if PendingInboundTransactionGetTimestamp(handle.Nil) != 0 {
		t.Fatal("inbound timestamp on nil")
	}
	if PendingOutboundTransactionGetDestination(handle.Nil) != handle.Nil {
		t.Fatal("outbound destination on nil")
	}
	if WalletGetBalance(handle.Nil) != 0 {
		t.Fatal("balance on nil")
	}
	if WalletGetContacts(handle.Nil) != handle.Nil {
		t.Fatal("wallet contacts on nil")
	}
	if WalletSendTransaction(handle.Nil, handle.Nil, 1, 1) != 0 {
		t.Fatal("send on nil")
	}
	if WalletGenerateTestData(handle.Nil) {
		t.Fatal("testdata on nil")
	}
	if WalletSetCallbacks(handle.Nil, handle.Nil) {
		t.Fatal("set callbacks on nil")
	}
	if CallbacksRegisterReceivedTransaction(handle.Nil, func(handle.Handle) {}) {
		t.Fatal("register on nil")
	}
}

func TestCommsConfigCreate(t *testing.T) {
	priv := PrivateKeyGenerate()
	defer PrivateKeyDestroy(priv)

	ClearLastError()
	if h := CommsConfigCreate("not an address", "db", t.TempDir(), priv); h != handle.Nil {
		t.Fatal("bad address must fail")
	}
	if rec := LastError(); rec.Code != errors.CodeAddressParse {
		t.Fatalf("last error code = %d, want %d", rec.Code, errors.CodeAddressParse)
	}

	if h := CommsConfigCreate("/ip4/127.0.0.1/tcp/20001", "", t.TempDir(), priv); h != handle.Nil {
		t.Fatal("empty database name must fail")
	}
	if h := CommsConfigCreate("/ip4/127.0.0.1/tcp/20001", "db", t.TempDir(), handle.Nil); h != handle.Nil {
		t.Fatal("nil secret key must fail")
	}

	h := CommsConfigCreate("/ip4/127.0.0.1/tcp/20001", "db", t.TempDir(), priv)
	if h == handle.Nil {
		t.Fatal("valid config rejected")
	}
	CommsConfigDestroy(h)
}

func TestLastErrorSlot(t *testing.T) {
	ClearLastError()
	if rec := LastError(); !rec.IsZero() {
		t.Fatalf("cleared slot not zero: %+v", rec)
	}

	PublicKeyFromHex("nope")
	rec := LastError()
	if rec.Code != errors.CodeHexLength {
		t.Fatalf("code = %d", rec.Code)
	}
	if rec.Message == "" {
		t.Fatal("message must carry the failure rendering")
	}

	// errno-style: a success does not clear the slot.
	h := PrivateKeyGenerate()
	PrivateKeyDestroy(h)
	if got := LastError(); got != rec {
		t.Fatalf("slot changed on success: %+v", got)
	}
}
