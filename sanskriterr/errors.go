// Package sanskriterr defines the sentinel error kinds used across the
// segmenter and derivation stack. Callers distinguish kinds with
// errors.Is; context is attached with fmt.Errorf("%w: ...") at the call
// site.
package sanskriterr

import "errors"

// ErrConfigLoad means a sandhi/lexicon/model file could not be read or
// parsed. It is fatal for the Segmenter under construction.
var ErrConfigLoad = errors.New("sanskritmorphy: config load failed")

// ErrLexiconUnpack means the lexicon returned a handle that failed to
// unpack into an analysis. It aborts the in-progress Segment call.
var ErrLexiconUnpack = errors.New("sanskritmorphy: lexicon unpack failed")

// ErrDerivation means the caller-supplied derive function failed on a given
// choice path. It is never returned to callers of FindAll: a failing path
// is silently dropped and contributes no derivation. It exists so internal
// bookkeeping and tests can refer to the failure kind by name.
var ErrDerivation = errors.New("sanskritmorphy: derivation failed")
