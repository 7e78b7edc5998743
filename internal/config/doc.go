// Package config defines the teardown plan and runtime tuning.
//
// The plan (ordered phases, resource kinds, namespace patterns) comes from
// a YAML file or the built-in default. Timeouts and retry limits come from
// environment variables with sensible defaults.
package config
