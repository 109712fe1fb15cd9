package shopkit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shophub/shopkit/pkg/apiclient"
	"github.com/shophub/shopkit/pkg/cart"
	"github.com/shophub/shopkit/pkg/catalog"
	"github.com/shophub/shopkit/pkg/config"
	"github.com/shophub/shopkit/pkg/logger"
	"github.com/shophub/shopkit/pkg/orders"
	"github.com/shophub/shopkit/pkg/session"
	"github.com/shophub/shopkit/pkg/storage"
	"github.com/shophub/shopkit/pkg/wishlist"
)

// ErrUnknownStorageBackend indicates a storage backend name outside
// memory, file, or redis.
var ErrUnknownStorageBackend = errors.New("shopkit.unknown_storage_backend")

// Store is the process-wide state container. Each field owns its slice of
// state exclusively; the UI interacts with them only through their defined
// operations and read methods.
type Store struct {
	Session  *session.Manager
	Cart     *cart.Engine
	Catalog  *catalog.Store
	Orders   *orders.Store
	Wishlist *wishlist.Store

	client *apiclient.Client
}

type options struct {
	cfg      *config.Client
	storage  storage.Storage
	logger   *slog.Logger
	navigate session.NavigateFunc
}

// Option is a functional option for configuring the Store
type Option func(*options)

// WithConfig supplies configuration directly instead of loading it from the
// environment.
func WithConfig(cfg config.Client) Option {
	return func(o *options) {
		o.cfg = &cfg
	}
}

// WithStorage sets the durable persistence backend, overriding the one the
// configuration selects.
func WithStorage(store storage.Storage) Option {
	return func(o *options) {
		o.storage = store
	}
}

// WithLogger sets the logger shared by all components. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithNavigator sets the callback signaled when a forced session teardown
// requires the UI to move to an unauthenticated entry point.
func WithNavigator(fn session.NavigateFunc) Option {
	return func(o *options) {
		o.navigate = fn
	}
}

// New assembles the state container: configuration, durable storage, the
// transport adapter, and the five state components, rehydrating session and
// cart from storage.
func New(ctx context.Context, opts ...Option) (*Store, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.cfg == nil {
		var cfg config.Client
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		o.cfg = &cfg
	}

	if o.logger == nil {
		o.logger = logger.New(
			logger.WithLevel(logger.ParseLevel(o.cfg.LogLevel)),
			logger.WithFormat(logger.ParseFormat(o.cfg.LogFormat)),
		)
	}

	if o.storage == nil {
		store, err := openStorage(ctx, o.cfg)
		if err != nil {
			return nil, err
		}
		o.storage = store
	}

	// The token source and teardown handler close over the manager variable:
	// the client needs the manager and the manager needs the client, and both
	// callbacks only run once requests start flowing.
	var mgr *session.Manager
	client, err := apiclient.New(
		apiclient.WithBaseURL(o.cfg.APIBaseURL),
		apiclient.WithTimeout(o.cfg.HTTPTimeout),
		apiclient.WithLogger(o.logger),
		apiclient.WithTokenSource(func() string {
			if mgr == nil {
				return ""
			}
			return mgr.Token()
		}),
		apiclient.WithTeardownHandler(func(ctx context.Context) {
			if mgr != nil {
				mgr.Teardown(ctx)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sessionOpts := []session.Option{session.WithLogger(o.logger)}
	if o.navigate != nil {
		sessionOpts = append(sessionOpts, session.WithNavigator(o.navigate))
	}
	mgr = session.NewManager(ctx, client, o.storage, sessionOpts...)

	return &Store{
		Session:  mgr,
		Cart:     cart.NewEngine(ctx, o.storage, cart.WithLogger(o.logger)),
		Catalog:  catalog.NewStore(client),
		Orders:   orders.NewStore(client),
		Wishlist: wishlist.NewStore(client),
		client:   client,
	}, nil
}

// Client exposes the transport adapter for callers that need raw access to
// the backend, such as admin tooling built on top of the layer.
func (s *Store) Client() *apiclient.Client {
	return s.client
}

// Logout ends the session and empties the cart, leaving no durable state
// behind: the token, user, and cart keys are all erased.
func (s *Store) Logout(ctx context.Context) error {
	sessionErr := s.Session.Logout(ctx)
	cartErr := s.Cart.Clear(ctx)
	return errors.Join(sessionErr, cartErr)
}

// Checkout places an order from the current cart contents and totals, and
// empties the cart once the backend confirms the order.
func (s *Store) Checkout(ctx context.Context, address orders.ShippingAddress, paymentMethod string) error {
	lines := s.Cart.Lines()
	totals := s.Cart.Totals()

	items := make([]orders.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, orders.Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.UnitPrice,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}

	input := orders.CreateInput{
		Items:           items,
		ShippingAddress: address,
		PaymentInfo:     orders.PaymentInfo{Method: paymentMethod, Status: "Pending"},
		ItemsPrice:      totals.ItemsPrice,
		TaxPrice:        totals.TaxPrice,
		ShippingPrice:   totals.ShippingPrice,
		TotalAmount:     totals.TotalAmount,
	}

	if err := s.Orders.Create(ctx, input); err != nil {
		return err
	}
	return s.Cart.Clear(ctx)
}

// openStorage builds the backend named by the configuration.
func openStorage(ctx context.Context, cfg *config.Client) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.StoragePath)
	case "redis":
		var redisCfg storage.RedisConfig
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		return storage.NewRedis(ctx, redisCfg)
	default:
		return nil, errors.Join(ErrUnknownStorageBackend, errors.New(cfg.StorageBackend))
	}
}
