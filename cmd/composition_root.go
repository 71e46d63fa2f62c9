package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/in/http"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/out/postgres"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/out/postgres/assignmentrepo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/out/postgres/branchrepo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/out/postgres/georepo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/out/postgres/loadrepo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/adapters/out/postgres/vehiclerepo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/application/usecases/commands"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/application/usecases/queries"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application use cases. The geo
// directory is loaded once at startup; the domain services built on it are
// immutable afterwards and shared by every handler.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	normalizer *services.AddressNormalizer
	classifier *services.RouteClassifier
	engine     *services.PricingEngine
	locator    *services.BranchLocator
	matcher    *services.VehicleMatcher
	ranker     *services.AllocationRanker
}

func NewCompositionRoot(ctx context.Context, _ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	if err := gormDB.AutoMigrate(
		&georepo.GeoUnitDTO{},
		&georepo.GeoAliasDTO{},
		&branchrepo.BranchDTO{},
		&vehiclerepo.VehicleDTO{},
		&loadrepo.VehicleLoadDTO{},
		&assignmentrepo.AssignmentDTO{},
	); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to migrate schema: %w", err)
	}

	directory, err := georepo.NewGormGeoReferenceStore(gormDB).LoadDirectory(ctx)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to load geo directory: %w", err)
	}

	normalizer, err := services.NewAddressNormalizer(directory)
	if err != nil {
		return CompositionRoot{}, err
	}

	classifier, err := services.NewRouteClassifier(normalizer)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		normalizer: normalizer,
		classifier: classifier,
		engine:     services.NewPricingEngine(),
		locator:    services.NewBranchLocator(),
		matcher:    services.NewVehicleMatcher(),
		ranker:     services.NewAllocationRanker(),
	}, nil
}

func (c *CompositionRoot) CreateQuoteQueryHandler() queries.QuoteQueryHandler {
	return queries.NewQuoteQueryHandler(
		c.normalizer, c.classifier, c.engine, c.locator,
		branchrepo.NewGormBranchRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateSuggestVehiclesQueryHandler() queries.SuggestVehiclesQueryHandler {
	return queries.NewSuggestVehiclesQueryHandler(
		c.normalizer, c.classifier, c.matcher, c.ranker, c.locator,
		branchrepo.NewGormBranchRepository(c.gormDB),
		vehiclerepo.NewGormVehicleRepository(c.gormDB),
		loadrepo.NewGormCapacityTracker(c.gormDB),
	)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(
		f, c.normalizer, c.classifier, c.matcher, c.ranker, c.locator,
		branchrepo.NewGormBranchRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateReleaseVehicleCommandHandler() commands.ReleaseVehicleCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateQuoteQueryHandler(),
		c.CreateSuggestVehiclesQueryHandler(),
		c.CreateAssignVehicleCommandHandler(),
		c.CreateReleaseVehicleCommandHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(loadrepo.NewGormCapacityTracker(c.gormDB), logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
