// Package inproc provides an in-process wallet engine backed by SQLite.
//
// Engines created on the same Network deliver transactions to each other
// synchronously: a send reaches the destination engine's pending inbound
// set and its event stream before SendTransaction returns, and the reply
// completes the sender's transaction the same way. Engines whose peer is
// not on the network keep the transaction pending outbound.
//
// Contacts and base node peers persist in a SQLite database under the
// configured datastore path. Balances and transaction sets are held in
// memory for the engine's lifetime.
package inproc
