package inproc

import (
	"sync"

	"github.com/halcyoncore/wallet-bridge/keys"
)

// Network is a loopback registry of engines keyed by node identity.
// Engines register on creation and unregister on shutdown; sends between
// registered engines are delivered in-process.
//
// The zero value is not usable; construct with NewNetwork. A single
// Network may back any number of engines.
type Network struct {
	mu    sync.RWMutex
	nodes map[string]*Engine
}

// NewNetwork creates an empty loopback network.
func NewNetwork() *Network {
	return &Network{nodes: make(map[string]*Engine)}
}

func (n *Network) register(e *Engine) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nodes[e.pub.Hex()] = e
}

func (n *Network) unregister(pub keys.PublicKey) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.nodes, pub.Hex())
}

func (n *Network) lookup(pub keys.PublicKey) (*Engine, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	e, ok := n.nodes[pub.Hex()]
	return e, ok
}
