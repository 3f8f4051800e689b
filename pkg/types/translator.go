package types

// Translator maps item identifiers between the stable space and the network
// space of a protocol. The protocol argument may be an alias; it is
// normalized before any lookup. Implementations are safe for concurrent use.
type Translator interface {
	// ToNetwork converts a stable id and meta for the given protocol.
	// A StableWildcard meta is sent as NetworkWildcard.
	// Returns a *LookupError wrapping ErrUnmappedIdentifier if no mapping exists.
	ToNetwork(id, meta int32, protocol Protocol) (NetworkItem, error)

	// FromNetwork converts a network id and meta back to the stable space.
	// isComplex reports whether the meta was baked into the network id.
	// Returns a *LookupError wrapping ErrInconsistentMetadata when a complex
	// mapping is queried with non-zero meta, or ErrUnmappedIdentifier.
	FromNetwork(id, meta int32, protocol Protocol) (item CoreItem, isComplex bool, err error)

	// FromNetworkWithWildcard is FromNetwork with NetworkWildcard handling:
	// simple items come back with StableWildcard, complex items with their
	// concrete meta.
	FromNetworkWithWildcard(id, meta int32, protocol Protocol) (CoreItem, error)
}
