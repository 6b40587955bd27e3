// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, DATAKIT_* environment variables and
// command line flags. It keeps presentation and logging settings out of the
// core packages, which take plain arguments.
package config
