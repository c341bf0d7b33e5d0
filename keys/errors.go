package keys

import "fmt"

// HexErrorKind identifies the hex import failure variant.
type HexErrorKind int

const (
	// HexLength means the input does not decode to the expected length.
	HexLength HexErrorKind = iota
	// HexConversion means decoding failed for a reason other than length
	// or a bad character.
	HexConversion
	// HexInvalidCharacter means the input contains a non-hex character.
	HexInvalidCharacter
)

// HexError is the hex decoding failure family.
type HexError struct {
	Kind HexErrorKind
	Char byte // offending character for HexInvalidCharacter
}

func (e *HexError) Error() string {
	switch e.Kind {
	case HexLength:
		return "hex: incorrect length"
	case HexInvalidCharacter:
		return fmt.Sprintf("hex: invalid character %q", e.Char)
	default:
		return "hex: conversion failed"
	}
}

// ByteArrayErrorKind identifies the byte import failure variant.
type ByteArrayErrorKind int

const (
	// ByteArrayIncorrectLength means the input is not exactly Size bytes.
	ByteArrayIncorrectLength ByteArrayErrorKind = iota
	// ByteArrayConversion means the bytes do not form a valid value.
	ByteArrayConversion
)

// ByteArrayError is the byte conversion failure family.
type ByteArrayError struct {
	Kind   ByteArrayErrorKind
	Detail string
}

func (e *ByteArrayError) Error() string {
	switch e.Kind {
	case ByteArrayIncorrectLength:
		return "byte array: incorrect length"
	default:
		if e.Detail != "" {
			return "byte array: conversion failed: " + e.Detail
		}
		return "byte array: conversion failed"
	}
}
