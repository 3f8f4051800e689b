package types

import (
	"errors"
	"fmt"
)

// Initialization errors. Any of these aborts table construction.
var (
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrMalformedSourceData = errors.New("malformed source data")
	ErrIdentifierCollision = errors.New("identifier collision")
)

// Lookup errors. These are returned per call and are recoverable.
var (
	ErrUnmappedIdentifier   = errors.New("unmapped identifier")
	ErrInconsistentMetadata = errors.New("non-zero meta on complex mapping")
)

// Direction names the translation direction of a failed lookup.
type Direction string

const (
	ToNetwork   Direction = "core->net"
	FromNetwork Direction = "net->core"
)

// LookupError describes a failed translation. It unwraps to Kind, which is
// ErrUnmappedIdentifier or ErrInconsistentMetadata.
type LookupError struct {
	Kind      error
	Direction Direction
	Protocol  Protocol // as given by the caller
	Canonical Protocol // after alias normalization
	ID        int32
	Meta      int32
}

func (e *LookupError) Error() string {
	proto := e.Protocol.String()
	if e.Canonical != e.Protocol {
		proto = fmt.Sprintf("%d (as %d)", e.Protocol, e.Canonical)
	}
	return fmt.Sprintf("%s: %s %d:%d on protocol %s", e.Kind, e.Direction, e.ID, e.Meta, proto)
}

func (e *LookupError) Unwrap() error { return e.Kind }
