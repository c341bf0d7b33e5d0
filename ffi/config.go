package ffi

import (
	"github.com/halcyoncore/wallet-bridge/handle"
	"github.com/halcyoncore/wallet-bridge/wallet"
)

// CommsConfigCreate validates the wallet configuration inputs and returns
// a config handle. Empty strings, an unparseable address or an invalid
// secret key handle yield handle.Nil; validation failures are recorded.
func CommsConfigCreate(address, databaseName, datastorePath string, secretKey handle.Handle) handle.Handle {
	sk, ok := privateKeys.Get(secretKey)
	if !ok {
		return handle.Nil
	}
	cfg, err := wallet.NewConfig(address, databaseName, datastorePath, sk)
	if err != nil {
		setLastError(err)
		return handle.Nil
	}
	return commsConfigs.Insert(cfg)
}

// CommsConfigDestroy releases a config. No-op on invalid handles.
func CommsConfigDestroy(h handle.Handle) {
	commsConfigs.Remove(h)
}
