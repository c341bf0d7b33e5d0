package errors

// Record is the caller-facing form of an internal error: a stable numeric
// code plus the full message of the original error chain. Records cross the
// boundary by value; they are never handles.
type Record struct {
	Code    int32
	Message string
}

// IsZero reports whether r is the empty record (no error).
func (r Record) IsZero() bool {
	return r.Code == 0 && r.Message == ""
}

// Stable codes per band. The band structure is part of the public contract;
// individual codes never move between releases.
const (
	// 1xx: output manager failures.
	CodeNotEnoughFunds             int32 = 101
	CodeIncompleteTransaction      int32 = 102
	CodeDuplicateOutput            int32 = 103
	CodeOutputValuesNotFound       int32 = 104
	CodeOutputAlreadySpent         int32 = 105
	CodePendingTransactionNotFound int32 = 106
	CodeOutputDuplicateInStore     int32 = 107
	CodeOutputValueNotFound        int32 = 108

	// 2xx: transaction service failures.
	CodeInvalidState            int32 = 200
	CodeProtocol                int32 = 201
	CodeRepeatedMessage         int32 = 202
	CodeTransactionNotFound     int32 = 203
	CodeSendNotEnoughFunds      int32 = 204
	CodeSendOutputManager       int32 = 205
	CodeTransactionInvalid      int32 = 206
	CodeTransactionDuplicate    int32 = 207
	CodeTransactionValueMissing int32 = 208

	// 3xx: net address failures.
	CodeAddressParse int32 = 300

	// 4xx: hex and byte-array decoding failures.
	CodeHexLength           int32 = 400
	CodeHexConversion       int32 = 401
	CodeHexInvalidCharacter int32 = 402
	CodeByteArrayLength     int32 = 403
	CodeByteArrayConversion int32 = 404

	// CodeUnknown is the catch-all for any unmapped variant in any
	// family, and for errors outside the known families.
	CodeUnknown int32 = 999
)
