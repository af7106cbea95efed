package config

import "errors"

var (
	// ErrFileNotFound is returned when a required configuration path does not exist.
	ErrFileNotFound = errors.New("configuration file not found")

	// ErrEmptyDirectory is returned when a configuration directory holds no
	// files with an extension. Optional markers never suppress it.
	ErrEmptyDirectory = errors.New("configuration directory is empty")

	// ErrUnsupportedFormat is returned when no registered parser claims a file extension.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrInvalidSpec is returned by ParseSpec for values it cannot normalize.
	ErrInvalidSpec = errors.New("invalid path spec")

	// ErrKeyNotFound is returned when a requested key is absent from the tree.
	ErrKeyNotFound = errors.New("configuration key not found")
)
