package cmd

import (
	"log/slog"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"

	httpadapter "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/memory"
	"pos/internal/adapters/out/memory/productrepo"
	"pos/internal/adapters/out/realtime"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/catalog"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
	"pos/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *memory.Store
	hub        *realtime.Hub
	uowFactory *memory.MemoryUnitOfWorkFactory
	products   ports.ProductRepository
	policy     order.TransitionPolicy
}

func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	menu, err := catalog.DefaultMenu()
	if err != nil {
		return CompositionRoot{}, err
	}

	// The store takes an interface; a nil *Hub must not reach it.
	var hub *realtime.Hub
	var publisher ports.OrderEventPublisher
	if config.RealtimeEnabled {
		hub = realtime.NewHub(config.ClientQueueSize, realtime.DefaultPongWait, logger)
		publisher = hub
	}
	store := memory.NewStore(publisher)

	policy := order.AnyRecognizedStatus
	if config.StrictStatusTransitions {
		policy = order.ForwardOnly
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		hub:        hub,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		products:   productrepo.NewMemoryProductRepository(menu),
		policy:     policy,
	}, nil
}

// Hub is nil when the socket channel is disabled.
func (c *CompositionRoot) Hub() *realtime.Hub {
	return c.hub
}

func (c *CompositionRoot) Policy() order.TransitionPolicy {
	return c.policy
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.products)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.store.Orders())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store.Orders())
}

// CreateRouter builds the HTTP surface. localIP is the address announced by
// the info endpoint; doc may be nil, which disables the document routes.
func (c *CompositionRoot) CreateRouter(localIP string, doc *openapi3.T) *echo.Echo {
	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetAllProductsQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		httpadapter.NewApiInfo(localIP, c.config.HTTPPort, c.hub != nil),
		c.logger,
	)

	opts := httpadapter.RouterOptions{Document: doc}
	if c.hub != nil {
		opts.Socket = httpadapter.NewSocketHandler(c.hub, c.store, c.CreateGetAllProductsQueryHandler(), c.logger)
	}

	e := httpadapter.NewRouter(server, opts, c.logger)
	e.Server.ReadHeaderTimeout = 10 * time.Second
	return e
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	schedules := jobs.Schedules{
		Keepalive: c.config.KeepaliveSchedule,
		Summary:   c.config.SummarySchedule,
	}

	// Same nil-interface concern as the store publisher.
	var hub jobs.SocketHub
	if c.hub != nil {
		hub = c.hub
	}
	return jobs.NewJobManager(c.CreateGetOrdersQueryHandler(), hub, schedules, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
