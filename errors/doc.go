// Package errors flattens the internal error taxonomies into the
// (code, message) records reported across the wallet boundary.
//
// Three independent families feed the mapper: the wallet engine errors
// (output manager, transaction service, net address), hex decoding errors
// and byte-array conversion errors. Each family owns a numeric band:
//
//	1xx  output manager failures
//	2xx  transaction service failures
//	3xx  net address failures
//	4xx  hex and byte-array decoding failures
//	999  catch-all for everything unmapped
//
// Within a band, well-known variants get stable individual codes so callers
// can pattern-match the actionable failures; every unmapped variant falls
// through to CodeUnknown. The message always carries the full rendering of
// the original error chain, so detail survives even under the catch-all
// code.
//
// Map is pure and total: any error value yields exactly one Record and no
// input panics the mapper.
package errors
