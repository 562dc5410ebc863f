package store

import "time"

// Config describes which backends to open and how
type Config struct {
	// AppName tags connections for diagnostics
	AppName string

	// Messages configures the sqlite message store
	Messages MessagesConfig
}

// MessagesConfig holds the sqlite message store settings
type MessagesConfig struct {
	// Enabled opens the seam when true
	Enabled bool

	// Path is the sqlite database file on disk
	Path string

	// ReadOnly opens the file with mode=ro
	// the message store is owned by another program, so the binaries
	// default this on when reading their env
	ReadOnly bool

	// MaxConns caps the pool, 0 means driver default
	MaxConns int

	// BusyTimeout is the sqlite busy handler budget
	BusyTimeout time.Duration
}

// normalized returns cfg with defaults applied
func (c MessagesConfig) normalized() MessagesConfig {
	if c.BusyTimeout <= 0 {
		c.BusyTimeout = 5 * time.Second
	}
	if c.MaxConns < 0 {
		c.MaxConns = 0
	}
	return c
}
