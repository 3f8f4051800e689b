// Package types defines the identifier types, the Directory and Translator
// interfaces, configuration, and standard error kinds for itembridge.
//
// Two identifier spaces meet here. The stable (core) space is the legacy
// numeric id and meta a server's item model uses on every protocol. The
// network space is what one Bedrock protocol version puts on the wire.
// Metadata wildcards are spelled differently in each: StableWildcard and
// NetworkWildcard.
package types
