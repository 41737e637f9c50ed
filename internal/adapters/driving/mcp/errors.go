// Package mcp provides an MCP (Model Context Protocol) server adapter for
// SearchKit. It enables AI assistants like Claude to search and maintain
// the content index.
package mcp

import "errors"

// ErrMissingIndexService is returned when the index service is not provided.
var ErrMissingIndexService = errors.New("mcp: index service is required")

// ErrImporterUnavailable is returned by the import tool when no importer
// service was configured.
var ErrImporterUnavailable = errors.New("mcp: importer service is not configured")
