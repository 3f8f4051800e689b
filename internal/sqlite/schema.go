package sqlite

// Schema DDL for snapshot tables. Every row carries the build it belongs to.
const (
	createBuilds = `CREATE TABLE builds (
    build_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    current_protocol INTEGER NOT NULL
);`

	createProtocols = `CREATE TABLE protocols (
    build_id TEXT NOT NULL,
    protocol INTEGER NOT NULL,
    label TEXT NOT NULL,
    canonical INTEGER NOT NULL,
    PRIMARY KEY (build_id, protocol),
    FOREIGN KEY (build_id) REFERENCES builds(build_id)
);`

	createSimpleMappings = `CREATE TABLE simple_mappings (
    build_id TEXT NOT NULL,
    protocol INTEGER NOT NULL,
    core_id INTEGER NOT NULL,
    network_id INTEGER NOT NULL,
    PRIMARY KEY (build_id, protocol, core_id),
    FOREIGN KEY (build_id) REFERENCES builds(build_id)
);`

	createComplexMappings = `CREATE TABLE complex_mappings (
    build_id TEXT NOT NULL,
    protocol INTEGER NOT NULL,
    core_id INTEGER NOT NULL,
    core_meta INTEGER NOT NULL,
    network_id INTEGER NOT NULL,
    PRIMARY KEY (build_id, protocol, core_id, core_meta),
    FOREIGN KEY (build_id) REFERENCES builds(build_id)
);`
)

// Index DDL for network-side lookups.
const (
	idxSimpleNetwork  = `CREATE UNIQUE INDEX idx_simple_network ON simple_mappings(build_id, protocol, network_id);`
	idxComplexNetwork = `CREATE UNIQUE INDEX idx_complex_network ON complex_mappings(build_id, protocol, network_id);`
	idxProtocolsCanon = `CREATE INDEX idx_protocols_canonical ON protocols(canonical);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createBuilds,
	createProtocols,
	createSimpleMappings,
	createComplexMappings,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxSimpleNetwork,
	idxComplexNetwork,
	idxProtocolsCanon,
}

// Column lists used by the inserts, in schema order.
var (
	buildColumns    = []string{"build_id", "created_at", "current_protocol"}
	protocolColumns = []string{"build_id", "protocol", "label", "canonical"}
	simpleColumns   = []string{"build_id", "protocol", "core_id", "network_id"}
	complexColumns  = []string{"build_id", "protocol", "core_id", "core_meta", "network_id"}
)
