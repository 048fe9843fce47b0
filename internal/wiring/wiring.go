// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.eeva.app/hub/internal/adapters/config"
	_ "go.eeva.app/hub/internal/adapters/digest"
	_ "go.eeva.app/hub/internal/adapters/logger"
	_ "go.eeva.app/hub/internal/adapters/memstore"
	_ "go.eeva.app/hub/internal/adapters/metrics"
	// Register app nodes.
	_ "go.eeva.app/hub/internal/app"
)
