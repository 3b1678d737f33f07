// Package config manages persistent user settings stored at
// ~/.skillpack/config.yaml, backed by Viper with SKILLPACK_* environment
// variable overrides. Settings hold workflow defaults such as the output
// directory used by the package and create commands.
package config
