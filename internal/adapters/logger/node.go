package logger

import (
	"context"
	"os"
	"strconv"

	"github.com/grindlemire/graft"
	"go.eeva.app/hub/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// jsonEnv selects JSON output before any configuration file is read, so
// configuration errors are reported in the requested format too.
const jsonEnv = "EEVA_LOG_JSON"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return fromEnv(os.LookupEnv), nil
		},
	})
}

func fromEnv(lookup func(string) (string, bool)) *Logger {
	l := New()
	if v, ok := lookup(jsonEnv); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			l.SetJSON(enabled)
		}
	}
	return l
}
