package ffi

import (
	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/engine/inproc"
	"github.com/halcyoncore/wallet-bridge/handle"
	"github.com/halcyoncore/wallet-bridge/keys"
	"github.com/halcyoncore/wallet-bridge/wallet"
)

// Distinct type IDs keep a handle of one entity kind from resolving as
// another, on top of the table's generation check.
const (
	typeByteVector uint32 = iota + 1
	typePrivateKey
	typePublicKey
	typeContact
	typeCompletedTx
	typeInboundTx
	typeOutboundTx
	typeContactList
	typeCompletedTxList
	typeInboundTxList
	typeOutboundTxList
	typeCommsConfig
	typeWallet
	typeCallbacks
)

var (
	table = handle.NewTable()

	byteVectors  = handle.NewTyped[[]byte](table, typeByteVector)
	privateKeys  = handle.NewTyped[keys.PrivateKey](table, typePrivateKey)
	publicKeys   = handle.NewTyped[keys.PublicKey](table, typePublicKey)
	contacts     = handle.NewTyped[engine.Contact](table, typeContact)
	completedTxs = handle.NewTyped[engine.CompletedTransaction](table, typeCompletedTx)
	inboundTxs   = handle.NewTyped[engine.InboundTransaction](table, typeInboundTx)
	outboundTxs  = handle.NewTyped[engine.OutboundTransaction](table, typeOutboundTx)

	contactLists     = handle.NewTyped[[]engine.Contact](table, typeContactList)
	completedTxLists = handle.NewTyped[[]engine.CompletedTransaction](table, typeCompletedTxList)
	inboundTxLists   = handle.NewTyped[[]engine.InboundTransaction](table, typeInboundTxList)
	outboundTxLists  = handle.NewTyped[[]engine.OutboundTransaction](table, typeOutboundTxList)

	commsConfigs   = handle.NewTyped[*wallet.Config](table, typeCommsConfig)
	wallets        = handle.NewTyped[*wallet.Wallet](table, typeWallet)
	callbackTables = handle.NewTyped[*Callbacks](table, typeCallbacks)

	// network is the loopback registry all wallets created through this
	// boundary share, so they can peer with each other in-process.
	network = inproc.NewNetwork()
)
