// Package nativeindex provides NativeIndex implementations that stand in
// for the operating system search services the engine mirrors into.
//
// The engine treats the native mirror as best effort: a missing or failing
// platform service never blocks the engine's own store. NullIndex serves
// platforms without a search service, Recorder captures mirror traffic for
// tests and diagnostics, and Throttled paces an inner index so bulk
// imports cannot flood a platform API.
package nativeindex
