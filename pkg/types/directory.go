package types

// DirectoryEntry pairs a string item identifier with the numeric network id
// a single protocol version assigns to it.
type DirectoryEntry struct {
	StringID  string `json:"string_id"`
	NetworkID int32  `json:"network_id"`
}

// Directory supplies every item known to each canonical protocol.
type Directory interface {
	// Entries returns the item entries keyed by canonical protocol.
	Entries() (map[Protocol][]DirectoryEntry, error)
}

// ProtocolFilter reports whether tables should be built for a protocol.
type ProtocolFilter func(Protocol) bool

// AllProtocols enables every protocol.
func AllProtocols(Protocol) bool { return true }
