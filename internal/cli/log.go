package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/LdDl/roadnet"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms"
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stage times one step of the command: reading input, importing OSM, exporting networks
type stage struct {
	logger *log.Logger
	name   string
	start  time.Time
}

func startStage(logger *log.Logger, name string) *stage {
	return &stage{logger: logger, name: name, start: time.Now()}
}

// done logs the stage with given key/value pairs followed by elapsed time
func (s *stage) done(keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Info(s.name, keyvals...)
}

// topologyDone logs size of the loaded topology
func (s *stage) topologyDone(topology *roadnet.Topology) {
	s.done("nodes", len(topology.Nodes), "edges", len(topology.Edges), "templates", len(topology.Templates))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default() when no logger is attached
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
