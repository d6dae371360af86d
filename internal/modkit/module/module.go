// Package module defines the contract every API module satisfies and the port lookups between them
package module

import (
	phttp "janaza/internal/platform/net/http"
)

// Module is mounted under its Prefix and may expose a port bundle to other modules.
// It lives apart from modkit so a module can export its own ports type without an import cycle
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	Ports() any
}
