package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/lingo"
	"github.com/aretw0/lingo/internal/logging"
	"github.com/aretw0/lingo/pkg/adapters/file"
	"github.com/aretw0/lingo/pkg/adapters/loam"
	"github.com/aretw0/lingo/pkg/adapters/redis"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/explore"
	"github.com/aretw0/lingo/pkg/observability"
	"github.com/aretw0/lingo/pkg/persistence/middleware"
	"github.com/aretw0/lingo/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the settings shared by every command.
type Config struct {
	Bound      int
	Capacities bool
	Debug      bool
	Metrics    bool

	// StoreDir is the directory store used when no Redis address is set.
	StoreDir string
	// StoreBackend selects the directory store: BackendLoam (default) or BackendFile.
	StoreBackend string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Directory store backends.
const (
	BackendLoam = "loam"
	BackendFile = "file"
)

// UsesRedis reports whether automaton references name entries in Redis.
func (c Config) UsesRedis() bool {
	return c.RedisAddr != ""
}

// Limits converts the guard flags into explorer limits.
func (c Config) Limits() explore.Limits {
	limits := explore.Bound(c.Bound)
	if c.Capacities {
		limits = limits.WithCapacities()
	}
	return limits
}

// Env is the wired application for one command run.
type Env struct {
	Engine *lingo.Engine
	Store  ports.AutomatonStore
	Logger *slog.Logger

	registry *prometheus.Registry
	closer   io.Closer
}

// Setup wires the engine, the store and the observability stack from cfg.
func Setup(cfg Config) (*Env, error) {
	env := &Env{Logger: createLogger(cfg.Debug)}

	if cfg.UsesRedis() {
		rs := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		env.Store = rs
		env.closer = rs
	} else {
		store, err := openDirectoryStore(cfg)
		if err != nil {
			return nil, err
		}
		env.Store = store
	}

	var mws []middleware.Middleware
	if cfg.Debug {
		mws = append(mws, middleware.NewLoggingMiddleware(env.Logger))
	}
	if cfg.UsesRedis() {
		// Each name is fetched at most once per run.
		mws = append(mws, middleware.NewCacheMiddleware())
	}
	env.Store = middleware.Chain(env.Store, mws...)

	var loader ports.AutomatonLoader = file.NewLoader("")
	if cfg.UsesRedis() {
		loader = env.Store
	}

	hooks := domain.LifecycleHooks{}
	if cfg.Debug {
		hooks = hooks.Merge(observability.LoggingHooks(env.Logger))
	}
	if cfg.Metrics {
		env.registry = prometheus.NewRegistry()
		m, err := observability.NewMetrics(env.registry)
		if err != nil {
			_ = env.Close()
			return nil, err
		}
		hooks = hooks.Merge(m.Hooks())
	}

	eng, err := lingo.New(
		lingo.WithLoader(loader),
		lingo.WithLimits(cfg.Limits()),
		lingo.WithLifecycleHooks(hooks),
		lingo.WithLogger(env.Logger),
	)
	if err != nil {
		_ = env.Close()
		return nil, err
	}
	env.Engine = eng
	return env, nil
}

// openDirectoryStore opens the on-disk store selected by cfg.StoreBackend.
func openDirectoryStore(cfg Config) (ports.AutomatonStore, error) {
	dir := cfg.StoreDir
	if dir == "" {
		dir = filepath.Join(".lingo", "automata")
	}

	switch cfg.StoreBackend {
	case "", BackendLoam:
		return loam.Open(dir)
	case BackendFile:
		return file.New(dir), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %s or %s)", cfg.StoreBackend, BackendLoam, BackendFile)
	}
}

// Load resolves ref: a file path, or a store name when Redis is configured.
func (e *Env) Load(ctx context.Context, ref string) (*domain.Automaton, error) {
	return e.Engine.Load(ctx, ref)
}

// FlushMetrics writes the collected metrics to w. It is a no-op when metrics are off.
func (e *Env) FlushMetrics(w io.Writer) error {
	if e.registry == nil {
		return nil
	}
	fmt.Fprintln(w)
	return observability.WriteText(w, e.registry)
}

// Close releases the store connection, if any.
func (e *Env) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr to keep Stdout clean for results.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
