package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run maps handlers, starts the HTTP server, and blocks until a
// shutdown signal arrives.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.l.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.l.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.l.Info(ctx, <-ch)
	srv.l.Info(ctx, "Stopping API service...")

	if srv.producer != nil {
		if err := srv.producer.Close(); err != nil {
			srv.l.Errorf(ctx, "Kafka producer close error: %v", err)
		}
	}

	return nil
}
