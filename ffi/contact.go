package ffi

import (
	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/handle"
)

// ContactCreate builds a contact from an alias and a public key handle.
// An empty alias or invalid key handle yields handle.Nil.
func ContactCreate(alias string, pub handle.Handle) handle.Handle {
	if alias == "" {
		return handle.Nil
	}
	pk, ok := publicKeys.Get(pub)
	if !ok {
		return handle.Nil
	}
	return contacts.Insert(engine.Contact{Alias: alias, PublicKey: pk})
}

// ContactDestroy releases a contact. No-op on invalid handles.
func ContactDestroy(h handle.Handle) {
	contacts.Remove(h)
}

// ContactGetAlias returns the contact's alias, or "" for an invalid
// handle.
func ContactGetAlias(h handle.Handle) string {
	c, ok := contacts.Get(h)
	if !ok {
		return ""
	}
	return c.Alias
}

// ContactGetPublicKey returns a fresh public key handle for the contact,
// or handle.Nil for an invalid handle.
func ContactGetPublicKey(h handle.Handle) handle.Handle {
	c, ok := contacts.Get(h)
	if !ok {
		return handle.Nil
	}
	return publicKeys.Insert(c.PublicKey)
}
