package errors

import (
	stderrors "errors"

	"github.com/halcyoncore/wallet-bridge/engine"
	"github.com/halcyoncore/wallet-bridge/keys"
)

// Map flattens err into a Record. Mapping is deterministic and total: any
// error yields exactly one record, and a nil error yields the zero record.
//
// The transaction service family is checked before the output manager
// family because service errors wrap output manager causes; an
// insufficient-funds failure inside a send must map into the 2xx band, not
// the 1xx band.
func Map(err error) Record {
	if err == nil {
		return Record{}
	}
	return Record{Code: code(err), Message: err.Error()}
}

func code(err error) int32 {
	var (
		tse *engine.TransactionServiceError
		ome *engine.OutputManagerError
		ae  *engine.AddressError
		he  *keys.HexError
		bae *keys.ByteArrayError
		se  *engine.StorageError
	)

	switch {
	case stderrors.As(err, &tse):
		return transactionServiceCode(tse)
	case stderrors.As(err, &ome):
		return outputManagerCode(ome)
	case stderrors.As(err, &ae):
		return CodeAddressParse
	case stderrors.As(err, &he):
		switch he.Kind {
		case keys.HexLength:
			return CodeHexLength
		case keys.HexConversion:
			return CodeHexConversion
		case keys.HexInvalidCharacter:
			return CodeHexInvalidCharacter
		}
		return CodeUnknown
	case stderrors.As(err, &bae):
		switch bae.Kind {
		case keys.ByteArrayIncorrectLength:
			return CodeByteArrayLength
		case keys.ByteArrayConversion:
			return CodeByteArrayConversion
		}
		return CodeUnknown
	case stderrors.As(err, &se):
		// A bare storage error outside its owning service has no band
		// of its own.
		return CodeUnknown
	}
	return CodeUnknown
}

func outputManagerCode(e *engine.OutputManagerError) int32 {
	switch e.Kind {
	case engine.OutputManagerNotEnoughFunds:
		return CodeNotEnoughFunds
	case engine.OutputManagerIncompleteTransaction:
		return CodeIncompleteTransaction
	case engine.OutputManagerDuplicateOutput:
		return CodeDuplicateOutput
	case engine.OutputManagerStorage:
		var se *engine.StorageError
		if !stderrors.As(e.Cause, &se) {
			return CodeUnknown
		}
		switch se.Kind {
		case engine.StorageValuesNotFound:
			return CodeOutputValuesNotFound
		case engine.StorageOutputAlreadySpent:
			return CodeOutputAlreadySpent
		case engine.StoragePendingTransactionNotFound:
			return CodePendingTransactionNotFound
		case engine.StorageDuplicateOutput:
			return CodeOutputDuplicateInStore
		case engine.StorageValueNotFound:
			return CodeOutputValueNotFound
		}
		return CodeUnknown
	}
	return CodeUnknown
}

func transactionServiceCode(e *engine.TransactionServiceError) int32 {
	switch e.Kind {
	case engine.TransactionServiceInvalidState:
		return CodeInvalidState
	case engine.TransactionServiceProtocol:
		return CodeProtocol
	case engine.TransactionServiceRepeatedMessage:
		return CodeRepeatedMessage
	case engine.TransactionServiceNotFound:
		return CodeTransactionNotFound
	case engine.TransactionServiceOutputManager:
		var ome *engine.OutputManagerError
		if stderrors.As(e.Cause, &ome) && ome.Kind == engine.OutputManagerNotEnoughFunds {
			return CodeSendNotEnoughFunds
		}
		return CodeSendOutputManager
	case engine.TransactionServiceTransaction:
		return CodeTransactionInvalid
	case engine.TransactionServiceStorage:
		var se *engine.StorageError
		if !stderrors.As(e.Cause, &se) {
			return CodeUnknown
		}
		switch se.Kind {
		case engine.StorageDuplicateOutput:
			return CodeTransactionDuplicate
		case engine.StorageValueNotFound:
			return CodeTransactionValueMissing
		}
		return CodeUnknown
	}
	return CodeUnknown
}
