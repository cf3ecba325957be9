package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drink-coffee/pkg/logger"
)

// ShutdownTimeout bounds how long in-flight requests may take to drain.
const ShutdownTimeout = 10 * time.Second

// SetupGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// HTTP server and runs the supplied cleanup functions in order.
func SetupGracefulShutdown(server *http.Server, log *logger.Logger, cleanups ...func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Info("Server shut down gracefully")
	}

	for _, cleanup := range cleanups {
		cleanup()
	}

	log.Info("Shutdown complete")
}
