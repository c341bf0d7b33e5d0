// Package keys implements the 32-byte key pairs used at the wallet
// boundary.
//
// A private key is a 32-byte scalar; its public key is the 32-byte X25519
// base-point multiple. Keys are immutable values and every export returns a
// fresh copy.
//
// Private key material is only revealed through the explicit Bytes export.
// The String method and every error produced by this package render without
// key bytes, so keys cannot leak through log or message paths.
//
// Import failures are typed: byte imports of the wrong length produce a
// ByteArrayError, hex imports produce a HexError. Both families carry a
// variant kind so the boundary error mapper can assign stable codes.
package keys
