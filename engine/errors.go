package engine

import "fmt"

// OutputManagerErrorKind identifies the output manager failure variant.
type OutputManagerErrorKind int

const (
	// OutputManagerNotEnoughFunds means the spendable balance cannot
	// cover amount plus fee.
	OutputManagerNotEnoughFunds OutputManagerErrorKind = iota
	// OutputManagerIncompleteTransaction means a transaction was
	// finalized before negotiation finished.
	OutputManagerIncompleteTransaction
	// OutputManagerDuplicateOutput means an output was produced twice.
	OutputManagerDuplicateOutput
	// OutputManagerStorage wraps a StorageError from the output store.
	OutputManagerStorage
	// OutputManagerOther covers unenumerated output manager failures.
	OutputManagerOther
)

func (k OutputManagerErrorKind) String() string {
	switch k {
	case OutputManagerNotEnoughFunds:
		return "not enough funds"
	case OutputManagerIncompleteTransaction:
		return "incomplete transaction"
	case OutputManagerDuplicateOutput:
		return "duplicate output"
	case OutputManagerStorage:
		return "storage error"
	default:
		return "output manager failure"
	}
}

// OutputManagerError is the output manager service failure family.
type OutputManagerError struct {
	Kind  OutputManagerErrorKind
	Cause error
}

func (e *OutputManagerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output manager: %s: %v", e.Kind, e.Cause)
	}
	return "output manager: " + e.Kind.String()
}

func (e *OutputManagerError) Unwrap() error { return e.Cause }

// StorageErrorKind identifies the storage failure variant.
type StorageErrorKind int

const (
	// StorageValuesNotFound means a bulk fetch matched nothing.
	StorageValuesNotFound StorageErrorKind = iota
	// StorageOutputAlreadySpent means an output was spent twice.
	StorageOutputAlreadySpent
	// StoragePendingTransactionNotFound means the referenced pending
	// transaction is absent.
	StoragePendingTransactionNotFound
	// StorageDuplicateOutput means the store already holds the output.
	StorageDuplicateOutput
	// StorageValueNotFound means the keyed value is absent.
	StorageValueNotFound
	// StorageOther covers unenumerated storage failures.
	StorageOther
)

func (k StorageErrorKind) String() string {
	switch k {
	case StorageValuesNotFound:
		return "values not found"
	case StorageOutputAlreadySpent:
		return "output already spent"
	case StoragePendingTransactionNotFound:
		return "pending transaction not found"
	case StorageDuplicateOutput:
		return "duplicate output"
	case StorageValueNotFound:
		return "value not found"
	default:
		return "storage failure"
	}
}

// StorageError is a failure of a service's backing store.
type StorageError struct {
	Kind StorageErrorKind
	Key  string // offending key for StorageValueNotFound, optional
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage: %s: %q", e.Kind, e.Key)
	}
	return "storage: " + e.Kind.String()
}

// TransactionServiceErrorKind identifies the transaction service failure
// variant.
type TransactionServiceErrorKind int

const (
	// TransactionServiceInvalidState means the service saw a message
	// that is invalid for the transaction's current state.
	TransactionServiceInvalidState TransactionServiceErrorKind = iota
	// TransactionServiceProtocol wraps a negotiation protocol failure.
	TransactionServiceProtocol
	// TransactionServiceRepeatedMessage means a protocol message was
	// delivered more than once.
	TransactionServiceRepeatedMessage
	// TransactionServiceNotFound means the referenced transaction does
	// not exist.
	TransactionServiceNotFound
	// TransactionServiceOutputManager wraps an OutputManagerError raised
	// while the transaction service was driving the output manager.
	TransactionServiceOutputManager
	// TransactionServiceTransaction wraps a transaction validation
	// failure.
	TransactionServiceTransaction
	// TransactionServiceStorage wraps a StorageError from the
	// transaction store.
	TransactionServiceStorage
	// TransactionServiceOther covers unenumerated service failures.
	TransactionServiceOther
)

func (k TransactionServiceErrorKind) String() string {
	switch k {
	case TransactionServiceInvalidState:
		return "invalid state"
	case TransactionServiceProtocol:
		return "protocol error"
	case TransactionServiceRepeatedMessage:
		return "repeated message"
	case TransactionServiceNotFound:
		return "transaction does not exist"
	case TransactionServiceOutputManager:
		return "output manager error"
	case TransactionServiceTransaction:
		return "transaction error"
	case TransactionServiceStorage:
		return "storage error"
	default:
		return "transaction service failure"
	}
}

// TransactionServiceError is the transaction service failure family.
type TransactionServiceError struct {
	Kind  TransactionServiceErrorKind
	Cause error
}

func (e *TransactionServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transaction service: %s: %v", e.Kind, e.Cause)
	}
	return "transaction service: " + e.Kind.String()
}

func (e *TransactionServiceError) Unwrap() error { return e.Cause }

// AddressError means a network address string failed to parse.
type AddressError struct {
	Address string
	Cause   error
}

func (e *AddressError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("net address: parse %q: %v", e.Address, e.Cause)
	}
	return fmt.Sprintf("net address: parse %q failed", e.Address)
}

func (e *AddressError) Unwrap() error { return e.Cause }

// Convenience constructors for the common failure paths.

// ErrNotEnoughFunds builds the insufficient-funds output manager error.
func ErrNotEnoughFunds() error {
	return &OutputManagerError{Kind: OutputManagerNotEnoughFunds}
}

// ErrTransactionNotFound builds the missing-transaction service error.
func ErrTransactionNotFound() error {
	return &TransactionServiceError{Kind: TransactionServiceNotFound}
}

// ErrValueNotFound builds a keyed storage miss.
func ErrValueNotFound(key string) error {
	return &StorageError{Kind: StorageValueNotFound, Key: key}
}
