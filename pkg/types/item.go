package types

import "strconv"

// Protocol is a Bedrock network protocol version. A raw protocol may be an
// alias of a canonical protocol whose tables it shares.
type Protocol int32

// String returns the decimal protocol number.
func (p Protocol) String() string {
	return strconv.FormatInt(int64(p), 10)
}

// Metadata wildcard sentinels meaning "any variant".
const (
	StableWildcard  int32 = -1
	NetworkWildcard int32 = 0x7fff
)

// CoreItem is an item identifier in the server's stable item space.
type CoreItem struct {
	ID   int32 `json:"id"`
	Meta int32 `json:"meta"`
}

// NetworkItem is an item identifier as one protocol version sends it.
type NetworkItem struct {
	ID   int32 `json:"id"`
	Meta int32 `json:"meta"`
}
