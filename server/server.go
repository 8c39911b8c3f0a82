package server

import (
	"ClinicDesk/middleware"
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultShutdownTimeout = 10 * time.Second

type Options struct {
	WebServerPort       string
	WebServerPreHandler func(r *gin.Engine)
	ReleaseMode         bool

	RateLimitPerSecond int
	ShutdownTimeout    time.Duration

	MigrationEnabled bool
	MigrationHandler func()

	JobsEnabled bool
	JobsHandler func()

	// OnShutdown runs after the listener has drained.
	OnShutdown func(ctx context.Context)
}

func GetDefaultOptions() Options {
	return Options{
		WebServerPort:    "5000",
		ShutdownTimeout:  defaultShutdownTimeout,
		MigrationEnabled: true,
		JobsEnabled:      true,
	}
}

// NewHandler builds the engine and wraps it with the optional rate limiter.
func NewHandler(opts Options) http.Handler {
	if opts.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r)
	}

	var handler http.Handler = r
	if limit := middleware.RateLimit(opts.RateLimitPerSecond); limit != nil {
		handler = limit(handler)
	}
	return handler
}

/*
* Run migrations and jobs when enabled
* Serve until SIGINT or SIGTERM, then drain within the shutdown timeout
 */
func Start(opts Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", ":"+opts.WebServerPort)
	if err != nil {
		return err
	}
	return Serve(ctx, listener, opts)
}

func Serve(ctx context.Context, listener net.Listener, opts Options) error {
	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		opts.MigrationHandler()
	}
	if opts.JobsEnabled && opts.JobsHandler != nil {
		opts.JobsHandler()
	}

	srv := &http.Server{
		Handler:           NewHandler(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Println("Server listening on", listener.Addr().String())
		serveErr <- srv.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Println("Shutting down server")
	err := srv.Shutdown(shutdownCtx)
	if opts.OnShutdown != nil {
		opts.OnShutdown(shutdownCtx)
	}
	return err
}
