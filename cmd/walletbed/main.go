package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/halcyoncore/wallet-bridge/ffi"
	"github.com/halcyoncore/wallet-bridge/handle"
	"github.com/halcyoncore/wallet-bridge/wallet"
)

func main() {
	var (
		address     = flag.String("address", "/ip4/127.0.0.1/tcp/21443", "Wallet listen multiaddr")
		dbName      = flag.String("db", "wallet", "Database name")
		datastore   = flag.String("datastore", "", "Datastore directory (default: temp dir)")
		keyHex      = flag.String("key", "", "Private key as 64 hex chars (default: generate)")
		testdata    = flag.Bool("testdata", false, "Seed the wallet with test data")
		contacts    = flag.Bool("contacts", false, "List contacts")
		txs         = flag.Bool("txs", false, "List transactions")
		sendTo      = flag.String("send", "", "Destination public key as 64 hex chars")
		amount      = flag.Uint64("amount", 0, "Amount to send")
		fee         = flag.Uint64("fee", 20, "Fee per gram")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		wallet.SetLogger(log)
		defer log.Sync()
	}

	if *datastore == "" {
		dir, err := os.MkdirTemp("", "walletbed-*")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer os.RemoveAll(dir)
		*datastore = dir
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*address, *dbName, *datastore, *keyHex); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*address, *dbName, *datastore, *keyHex, *sendTo, *amount, *fee, *testdata, *contacts, *txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// boundaryErr renders the last boundary failure for a failed operation.
func boundaryErr(op string) error {
	if rec := ffi.LastError(); !rec.IsZero() {
		return fmt.Errorf("%s: [%d] %s", op, rec.Code, rec.Message)
	}
	return fmt.Errorf("%s failed", op)
}

func openWallet(address, dbName, datastore, keyHex string) (handle.Handle, error) {
	var priv handle.Handle
	if keyHex != "" {
		priv = ffi.PrivateKeyFromHex(keyHex)
	} else {
		priv = ffi.PrivateKeyGenerate()
	}
	if priv == handle.Nil {
		return handle.Nil, boundaryErr("import key")
	}
	defer ffi.PrivateKeyDestroy(priv)

	cfg := ffi.CommsConfigCreate(address, dbName, datastore, priv)
	if cfg == handle.Nil {
		return handle.Nil, boundaryErr("create config")
	}
	defer ffi.CommsConfigDestroy(cfg)

	w := ffi.WalletCreate(cfg)
	if w == handle.Nil {
		return handle.Nil, boundaryErr("create wallet")
	}
	return w, nil
}

func run(address, dbName, datastore, keyHex, sendTo string, amount, fee uint64, testdata, listContacts, listTxs bool) error {
	w, err := openWallet(address, dbName, datastore, keyHex)
	if err != nil {
		return err
	}
	defer ffi.WalletDestroy(w)

	if testdata {
		if !ffi.WalletGenerateTestData(w) {
			return boundaryErr("generate test data")
		}
		fmt.Println("Seeded test data.")
	}

	fmt.Printf("Balance: %d\n", ffi.WalletGetBalance(w))

	if listContacts {
		if err := printContacts(w); err != nil {
			return err
		}
	}

	if sendTo != "" {
		dest := ffi.PublicKeyFromHex(sendTo)
		if dest == handle.Nil {
			return boundaryErr("parse destination")
		}
		defer ffi.PublicKeyDestroy(dest)

		id := ffi.WalletSendTransaction(w, dest, amount, fee)
		if id == 0 {
			return boundaryErr("send")
		}
		fmt.Printf("Sent transaction %d (amount %d, fee %d)\n", id, amount, fee)
	}

	if listTxs {
		printTransactions(w)
	}
	return nil
}

func printContacts(w handle.Handle) error {
	list := ffi.WalletGetContacts(w)
	if list == handle.Nil {
		return boundaryErr("get contacts")
	}
	defer ffi.ContactsDestroy(list)

	n := ffi.ContactsGetLength(list)
	fmt.Printf("Contacts: %d\n", n)
	for i := uint32(0); i < n; i++ {
		c := ffi.ContactsGetAt(list, i)
		alias := ffi.ContactGetAlias(c)
		pub := ffi.ContactGetPublicKey(c)
		pubBytes := ffi.PublicKeyGetBytes(pub)
		fmt.Printf("  %-12s %s\n", alias, hexOf(pubBytes))
		ffi.ByteVectorDestroy(pubBytes)
		ffi.PublicKeyDestroy(pub)
		ffi.ContactDestroy(c)
	}
	return nil
}

func printTransactions(w handle.Handle) {
	if list := ffi.WalletGetCompletedTransactions(w); list != handle.Nil {
		n := ffi.CompletedTransactionsGetLength(list)
		fmt.Printf("Completed: %d\n", n)
		for i := uint32(0); i < n; i++ {
			tx := ffi.CompletedTransactionsGetAt(list, i)
			fmt.Printf("  #%d amount=%d fee=%d\n",
				ffi.CompletedTransactionGetTransactionID(tx),
				ffi.CompletedTransactionGetAmount(tx),
				ffi.CompletedTransactionGetFee(tx))
			ffi.CompletedTransactionDestroy(tx)
		}
		ffi.CompletedTransactionsDestroy(list)
	}

	if list := ffi.WalletGetPendingInboundTransactions(w); list != handle.Nil {
		n := ffi.PendingInboundTransactionsGetLength(list)
		fmt.Printf("Pending inbound: %d\n", n)
		for i := uint32(0); i < n; i++ {
			tx := ffi.PendingInboundTransactionsGetAt(list, i)
			fmt.Printf("  #%d amount=%d\n",
				ffi.PendingInboundTransactionGetTransactionID(tx),
				ffi.PendingInboundTransactionGetAmount(tx))
			ffi.PendingInboundTransactionDestroy(tx)
		}
		ffi.PendingInboundTransactionsDestroy(list)
	}

	if list := ffi.WalletGetPendingOutboundTransactions(w); list != handle.Nil {
		n := ffi.PendingOutboundTransactionsGetLength(list)
		fmt.Printf("Pending outbound: %d\n", n)
		for i := uint32(0); i < n; i++ {
			tx := ffi.PendingOutboundTransactionsGetAt(list, i)
			fmt.Printf("  #%d amount=%d fee=%d\n",
				ffi.PendingOutboundTransactionGetTransactionID(tx),
				ffi.PendingOutboundTransactionGetAmount(tx),
				ffi.PendingOutboundTransactionGetFee(tx))
			ffi.PendingOutboundTransactionDestroy(tx)
		}
		ffi.PendingOutboundTransactionsDestroy(list)
	}
}

func hexOf(byteVector handle.Handle) string {
	const digits = "0123456789abcdef"
	n := ffi.ByteVectorGetLength(byteVector)
	out := make([]byte, 0, n*2)
	for i := uint32(0); i < n; i++ {
		b := ffi.ByteVectorGetAt(byteVector, i)
		out = append(out, digits[b>>4], digits[b&0xf])
	}
	return string(out)
}
