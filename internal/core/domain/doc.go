// Package domain contains the core business entities of SearchKit.
//
// Entities here are plain data structures with behaviour limited to
// validation, normalisation and convenience accessors. They carry no
// dependencies on adapters, storage or platform SDKs, which keeps the
// hexagon's centre portable across every host the framework targets.
package domain
