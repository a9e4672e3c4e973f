package store

// Config selects and configures backends
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures the Postgres pool
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int // with LogSQL, queries at least this slow log at warn
}
