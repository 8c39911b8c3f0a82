package db

import (
	"ClinicDesk/config"
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"
)

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"

	hookTimeout       = 30 * time.Second
	hookRetryMin      = time.Second
	maxHookRetryDelay = time.Minute
)

var ErrNotConfigured = errors.New("mongo client is not configured")

type hook struct {
	name string
	fn   func(ctx context.Context) error
	done bool
}

// Client is the process-wide handle on the document store. The underlying
// mongo.Client owns the connection pool and is safe for concurrent use.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	log      *zap.Logger
	timeout  time.Duration

	connected atomic.Bool

	serversMu sync.Mutex
	servers   map[string]bool

	hooksMu      sync.Mutex
	hooks        []*hook
	hooksPending atomic.Bool
	hooksRunning atomic.Bool
	retryAt      atomic.Int64
	retryMin     time.Duration
	retryDelay   time.Duration
}

/*
* Build the driver options from configuration
* mongo.Connect does not dial, so this never blocks on the network
* Ping once in the background; failure only leaves the state disconnected
 */
func Connect(ctx context.Context, cfg config.MongoDB, log *zap.Logger) *Client {
	c := &Client{
		log:      log,
		timeout:  cfg.ServerSelectionTimeout,
		servers:  make(map[string]bool),
		retryMin: hookRetryMin,
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetRetryWrites(cfg.RetryWrites).
		SetWriteConcern(WriteConcern(cfg.WriteConcern)).
		SetServerMonitor(&event.ServerMonitor{
			ServerHeartbeatSucceeded: func(e *event.ServerHeartbeatSucceededEvent) {
				c.recordHeartbeat(e.ConnectionID, nil)
			},
			ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
				c.recordHeartbeat(e.ConnectionID, e.Failure)
			},
		})
	if cfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Error("Failed to create mongo client", zap.Error(err))
		return c
	}
	c.client = client
	c.database = client.Database(cfg.Database)

	go c.ping(ctx)
	return c
}

func (c *Client) ping(ctx context.Context) {
	timeout := c.timeout
	if timeout <= 0 {
		timeout = hookTimeout
	}
	pingCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := c.client.Ping(pingCtx, readpref.Primary()); err != nil {
		c.log.Error("Failed to ping mongo database", zap.Error(err))
		return
	}
	c.markConnected()
}

func WriteConcern(value string) *writeconcern.WriteConcern {
	if value == "" || value == "majority" {
		return writeconcern.Majority()
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return writeconcern.Majority()
	}
	return &writeconcern.WriteConcern{W: n}
}

/*
* Heartbeats arrive per monitored server
* The store counts as connected while any server answers
 */
func (c *Client) recordHeartbeat(connectionID string, failure error) {
	server := connectionID
	if i := strings.Index(server, "["); i > 0 {
		server = server[:i]
	}

	c.serversMu.Lock()
	c.servers[server] = failure == nil
	anyUp := false
	for _, up := range c.servers {
		if up {
			anyUp = true
			break
		}
	}
	c.serversMu.Unlock()

	if anyUp {
		c.markConnected()
		return
	}
	c.markDisconnected(failure)
}

func (c *Client) markConnected() {
	if c.connected.CompareAndSwap(false, true) {
		c.log.Info("Successfully connected to mongo database")
		c.retryAt.Store(0)
	}
	c.scheduleHooks()
}

func (c *Client) markDisconnected(cause error) {
	if !c.connected.CompareAndSwap(true, false) {
		return
	}
	c.log.Warn("Lost connection to mongo database", zap.Error(cause))
}

func (c *Client) Connected() bool {
	return c.connected.Load()
}

func (c *Client) Status() string {
	if c.Connected() {
		return StatusConnected
	}
	return StatusDisconnected
}

// OnConnect registers fn to run once the store is reachable. A failed hook
// is retried with backoff on later healthy heartbeats until it succeeds.
func (c *Client) OnConnect(name string, fn func(ctx context.Context) error) {
	c.hooksMu.Lock()
	c.hooks = append(c.hooks, &hook{name: name, fn: fn})
	c.hooksPending.Store(true)
	c.hooksMu.Unlock()

	if c.Connected() {
		c.scheduleHooks()
	}
}

/*
* Nothing to do when every hook has completed
* Wait out the backoff left by the last failed run
* Only one run is in flight at a time
 */
func (c *Client) scheduleHooks() {
	if !c.hooksPending.Load() {
		return
	}
	if time.Now().UnixNano() < c.retryAt.Load() {
		return
	}
	if !c.hooksRunning.CompareAndSwap(false, true) {
		return
	}
	go c.runHooks()
}

func (c *Client) runHooks() {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()
	defer c.hooksRunning.Store(false)

	pending := false
	for _, h := range c.hooks {
		if h.done {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
		err := h.fn(ctx)
		cancel()
		if err != nil {
			pending = true
			c.log.Error("On-connect hook failed", zap.String("hook", h.name), zap.Error(err))
			continue
		}
		h.done = true
		c.log.Info("On-connect hook completed", zap.String("hook", h.name))
	}
	c.hooksPending.Store(pending)

	if !pending {
		c.retryDelay = 0
		c.retryAt.Store(0)
		return
	}
	c.retryDelay = nextRetryDelay(c.retryDelay, c.retryMin)
	c.retryAt.Store(time.Now().Add(c.retryDelay).UnixNano())
}

func nextRetryDelay(current, floor time.Duration) time.Duration {
	if current < floor {
		return floor
	}
	if current*2 > maxHookRetryDelay {
		return maxHookRetryDelay
	}
	return current * 2
}

func (c *Client) Collection(name string) (*mongo.Collection, error) {
	if c.database == nil {
		return nil, ErrNotConfigured
	}
	return c.database.Collection(name), nil
}

func (c *Client) Disconnect(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	c.connected.Store(false)
	return c.client.Disconnect(ctx)
}

// Wrap adopts an already connected mongo.Client.
func Wrap(client *mongo.Client, database string, log *zap.Logger) *Client {
	c := &Client{
		client:   client,
		database: client.Database(database),
		log:      log,
		servers:  make(map[string]bool),
		retryMin: hookRetryMin,
	}
	c.connected.Store(true)
	return c
}
