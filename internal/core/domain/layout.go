package domain

import "time"

const (
	// ConfigFileName is the name of the calculator configuration file.
	ConfigFileName = "jyotish.yaml"

	// DefaultComputeTimeout bounds a single profile computation when no config overrides it.
	DefaultComputeTimeout = 5 * time.Second

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
