// Package wallet provides the synchronous facade over the wallet engine.
//
// A Wallet owns one engine instance, one worker goroutine and one
// dispatcher goroutine. Every operation is queued onto the worker and the
// calling goroutine blocks until it completes, so calls against one wallet
// are totally ordered even when issued from concurrent goroutines. The
// dispatcher drains the engine's event stream and forwards each event to
// the registered handler in emission order.
//
// Destroy shuts the engine down, stops both goroutines and releases the
// facade. A shutdown failure is logged and swallowed: by the time Destroy
// runs there is no remaining channel to report it on.
//
// No cancellation or timeouts are exposed; an operation runs to completion
// or fails with the engine's error.
package wallet
