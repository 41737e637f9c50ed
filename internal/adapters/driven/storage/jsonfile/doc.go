// Package jsonfile provides a file-backed item store.
//
// The whole index lives in one JSON document under the searchkit data
// directory. The store exists for the CLI and other short-lived hosts,
// where the in-memory store would lose the index between invocations.
// Long-running embedders normally keep the memory store and rely on the
// host application to re-register content on launch.
package jsonfile
