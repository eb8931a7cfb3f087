package cmd

import (
	"context"
	"log/slog"

	"bakery/internal/adapters/in/kafka"
	"bakery/internal/adapters/out/mail"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/ws"
	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	saver      *postgres.GormSnapshotSaver
	hub        *ws.Hub
	store      *orderstore.Store
	mailer     *mail.ResendMailer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	saver := postgres.NewGormSnapshotSaver(gormDB, config.SnapshotOrderLimit)
	hub := ws.NewHub(logger)
	store := orderstore.NewStore(saver, hub, logger)
	mailer := mail.NewResendMailer(config.ResendAPIKey, config.MailFrom, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		saver:      saver,
		hub:        hub,
		store:      store,
		mailer:     mailer,
		logger:     logger,
	}
}

func (c *CompositionRoot) Store() *orderstore.Store {
	return c.store
}

func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// WarmStore loads the persisted orders into the in-memory store. Called
// once at startup before the web server accepts requests.
func (c *CompositionRoot) WarmStore(ctx context.Context) error {
	uow := c.uowFactory.Create()
	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	c.store.Load(orders)
	return nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.store, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.store)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersSummaryQueryHandler() queries.GetOrdersSummaryQueryHandler {
	return queries.NewGetOrdersSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderChangeConsumer(config Config) (*kafka.OrderChangeConsumer, error) {
	return kafka.NewOrderChangeConsumer(
		config.KafkaHost,
		config.KafkaConsumerGroup,
		config.KafkaOrderChangedTopic,
		c.store,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(
		c.store,
		c.saver,
		c.CreateGetOrdersSummaryQueryHandler(),
		config.BackupIntervalMinutes,
		c.logger,
	)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
