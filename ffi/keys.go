package ffi

import (
	"github.com/halcyoncore/wallet-bridge/handle"
	"github.com/halcyoncore/wallet-bridge/keys"
)

// PublicKeyCreate imports a public key from a byte vector handle. An
// invalid vector handle or malformed key material yields handle.Nil.
func PublicKeyCreate(bytes handle.Handle) handle.Handle {
	b, ok := byteVectors.Get(bytes)
	if !ok {
		return handle.Nil
	}
	pub, err := keys.PublicKeyFromBytes(b)
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return publicKeys.Insert(pub)
}

// PublicKeyDestroy releases a public key. No-op on invalid handles.
func PublicKeyDestroy(h handle.Handle) {
	publicKeys.Remove(h)
}

// PublicKeyGetBytes exports the key as a fresh byte vector handle, or
// handle.Nil for an invalid handle.
func PublicKeyGetBytes(h handle.Handle) handle.Handle {
	pub, ok := publicKeys.Get(h)
	if !ok {
		return handle.Nil
	}
	return byteVectors.Insert(pub.Bytes())
}

// PublicKeyFromPrivateKey derives the public key for a private key handle.
func PublicKeyFromPrivateKey(priv handle.Handle) handle.Handle {
	sk, ok := privateKeys.Get(priv)
	if !ok {
		return handle.Nil
	}
	return publicKeys.Insert(sk.Public())
}

// PublicKeyFromHex imports a public key from a hex string.
func PublicKeyFromHex(s string) handle.Handle {
	pub, err := keys.PublicKeyFromHex(s)
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return publicKeys.Insert(pub)
}

// PrivateKeyCreate imports a private key from a byte vector handle.
func PrivateKeyCreate(bytes handle.Handle) handle.Handle {
	b, ok := byteVectors.Get(bytes)
	if !ok {
		return handle.Nil
	}
	sk, err := keys.PrivateKeyFromBytes(b)
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return privateKeys.Insert(sk)
}

// PrivateKeyDestroy releases a private key. No-op on invalid handles.
func PrivateKeyDestroy(h handle.Handle) {
	privateKeys.Remove(h)
}

// PrivateKeyGetBytes exports the key material as a fresh byte vector
// handle, or handle.Nil for an invalid handle.
func PrivateKeyGetBytes(h handle.Handle) handle.Handle {
	sk, ok := privateKeys.Get(h)
	if !ok {
		return handle.Nil
	}
	return byteVectors.Insert(sk.Bytes())
}

// PrivateKeyGenerate creates a fresh random private key.
func PrivateKeyGenerate() handle.Handle {
	return privateKeys.Insert(keys.GeneratePrivateKey())
}

// PrivateKeyFromHex imports a private key from a hex string.
func PrivateKeyFromHex(s string) handle.Handle {
	sk, err := keys.PrivateKeyFromHex(s)
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return privateKeys.Insert(sk)
}
