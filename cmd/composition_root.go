package cmd

import (
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/adapters/out/erpnext"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/adapters/out/postgres"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/adapters/out/postgres/orderrepo"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/application/usecases/commands"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/application/usecases/queries"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/services"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	erpGateway ports.ErpGateway
	planner    services.ConsolidationPlanner
	scorer     services.SupplierScorer
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	erpGateway, err := erpnext.NewClient(
		configs.ErpNextURL, configs.ErpNextAPIKey, configs.ErpNextAPISecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	planner, err := services.NewConsolidationPlanner(services.NewLookupDistanceEstimator())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		erpGateway: erpGateway,
		planner:    planner,
		scorer:     services.NewSupplierScorer(),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDeliveryDateCommandHandler() commands.ChangeDeliveryDateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDeliveryDateCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptShipmentProposalCommandHandler() commands.AcceptShipmentProposalCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptShipmentProposalCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchShipmentCommandHandler() commands.DispatchShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncPurchaseOrdersCommandHandler() commands.SyncPurchaseOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncPurchaseOrdersCommandHandler(c.erpGateway, f)
}

func (c *CompositionRoot) CreateGetPurchaseOrdersQueryHandler() queries.GetPurchaseOrdersQueryHandler {
	return queries.NewGetPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentPlanQueryHandler() queries.GetShipmentPlanQueryHandler {
	return queries.NewGetShipmentPlanQueryHandler(c.readOnlyOrderRepository(), c.planner, time.Now)
}

func (c *CompositionRoot) CreateGetSupplierScoresQueryHandler() queries.GetSupplierScoresQueryHandler {
	return queries.NewGetSupplierScoresQueryHandler(c.readOnlyOrderRepository(), c.scorer)
}

// readOnlyOrderRepository binds an order repository directly to the base
// connection for queries that read domain aggregates without a transaction.
func (c *CompositionRoot) readOnlyOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
}

// noopTracker discards aggregate tracking; read paths have no transaction to
// enlist aggregates into.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
