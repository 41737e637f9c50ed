// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the engine to function:
//
//   - ItemStore: Searchable item storage, insertion-ordered
//
// # Optional Interfaces
//
// These can be nil - the engine degrades gracefully:
//
//   - NativeIndex: Mirror of the index inside the OS search service.
//     Without it, items are only searchable through the engine itself.
//   - MaintenanceStore: Task state for background maintenance. Without
//     it, maintenance runs without crash recovery.
//   - ConfigStore: Settings persistence for long-lived hosts such as
//     the CLI. The engine itself reads no configuration.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
