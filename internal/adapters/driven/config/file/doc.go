// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//
// The package also maps raw configuration keys onto typed engine settings,
// so hosts embedding the engine read one struct instead of loose keys.
package file
