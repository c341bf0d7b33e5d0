package wallet

import (
	"errors"

	ma "github.com/multiformats/go-multiaddr"

	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/keys"
)

// ErrMissingConfigValue means a required configuration string was empty.
var ErrMissingConfigValue = errors.New("wallet: missing config value")

// Config carries everything needed to bring up a wallet's comms and
// storage: the listen address, the storage database name, the datastore
// path and the node's secret key.
type Config struct {
	Address       ma.Multiaddr
	DatabaseName  string
	DatastorePath string
	Secret        keys.PrivateKey
}

// NewConfig validates the raw inputs and builds a Config. The address must
// parse as a multiaddr (e.g. /ip4/127.0.0.1/tcp/21443); a parse failure is
// reported as an engine.AddressError so it maps into the net address band.
func NewConfig(address, databaseName, datastorePath string, secret keys.PrivateKey) (*Config, error) {
	if address == "" || databaseName == "" || datastorePath == "" {
		return nil, ErrMissingConfigValue
	}

	addr, err := ma.NewMultiaddr(address)
	if err != nil {
		return nil, &engine.AddressError{Address: address, Cause: err}
	}

	return &Config{
		Address:       addr,
		DatabaseName:  databaseName,
		DatastorePath: datastorePath,
		Secret:        secret,
	}, nil
}

// PublicKey returns the node identity derived from the config's secret.
func (c *Config) PublicKey() keys.PublicKey {
	return c.Secret.Public()
}
