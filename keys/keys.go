package keys

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/curve25519"
)

// Size is the byte length of both private and public keys.
const Size = 32

// PrivateKey is a 32-byte secret scalar. The zero value is not a usable key.
type PrivateKey struct {
	k [Size]byte
}

// PublicKey is a 32-byte public key derived from a PrivateKey.
type PublicKey struct {
	k [Size]byte
}

// GeneratePrivateKey returns a fresh random private key.
func GeneratePrivateKey() PrivateKey {
	var k PrivateKey
	// rand.Read is documented to never fail (it panics on a broken
	// source), so key generation is infallible at this layer.
	_, _ = rand.Read(k.k[:])
	return k
}

// PrivateKeyFromBytes imports a private key from exactly Size bytes.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var k PrivateKey
	if len(b) != Size {
		return k, &ByteArrayError{Kind: ByteArrayIncorrectLength}
	}
	copy(k.k[:], b)
	return k, nil
}

// PrivateKeyFromHex imports a private key from a hex string.
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	var k PrivateKey
	b, err := decodeKeyHex(s)
	if err != nil {
		return k, err
	}
	copy(k.k[:], b)
	return k, nil
}

// Bytes is the explicit export of the key material. The returned slice is a
// copy.
func (k PrivateKey) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, k.k[:])
	return out
}

// Public derives the public key via X25519 base-point multiplication.
func (k PrivateKey) Public() PublicKey {
	var pub PublicKey
	p, err := curve25519.X25519(k.k[:], curve25519.Basepoint)
	if err != nil {
		// Unreachable with the base point; clamping forbids the
		// all-zero output. Return the zero key rather than panic.
		return pub
	}
	copy(pub.k[:], p)
	return pub
}

// Equal reports whether two private keys hold the same scalar, in constant
// time.
func (k PrivateKey) Equal(other PrivateKey) bool {
	return subtle.ConstantTimeCompare(k.k[:], other.k[:]) == 1
}

// String renders without key material.
func (k PrivateKey) String() string {
	return "PrivateKey(redacted)"
}

// PublicKeyFromBytes imports a public key from exactly Size bytes. The
// all-zero point is rejected as invalid.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var k PublicKey
	if len(b) != Size {
		return k, &ByteArrayError{Kind: ByteArrayIncorrectLength}
	}
	zero := true
	for _, c := range b {
		if c != 0 {
			zero = false
			break
		}
	}
	if zero {
		return k, &ByteArrayError{Kind: ByteArrayConversion, Detail: "zero point"}
	}
	copy(k.k[:], b)
	return k, nil
}

// PublicKeyFromHex imports a public key from a hex string.
func PublicKeyFromHex(s string) (PublicKey, error) {
	b, err := decodeKeyHex(s)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKeyFromBytes(b)
}

// Bytes returns a copy of the public key bytes.
func (k PublicKey) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, k.k[:])
	return out
}

// Hex returns the lowercase hex rendering of the public key.
func (k PublicKey) Hex() string {
	return hex.EncodeToString(k.k[:])
}

// Equal reports whether two public keys are the same point.
func (k PublicKey) Equal(other PublicKey) bool {
	return k.k == other.k
}

func (k PublicKey) String() string {
	return k.Hex()
}

// IsZero reports whether k is the zero value.
func (k PublicKey) IsZero() bool {
	return k.k == [Size]byte{}
}

// decodeKeyHex decodes a hex string that must represent exactly Size bytes,
// normalizing encoding/hex failures into the HexError family.
func decodeKeyHex(s string) ([]byte, error) {
	if len(s) != Size*2 {
		return nil, &HexError{Kind: HexLength}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		var inv hex.InvalidByteError
		if errors.As(err, &inv) {
			return nil, &HexError{Kind: HexInvalidCharacter, Char: byte(inv)}
		}
		return nil, &HexError{Kind: HexConversion}
	}
	return b, nil
}
