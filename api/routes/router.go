// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cineverse/internal/auth"
	"cineverse/internal/catalog"
	"cineverse/internal/flow"
	"cineverse/internal/ledger"
	"cineverse/internal/payment"
	"cineverse/internal/seating"
	"cineverse/internal/shared/config"
)

// Router holds all route dependencies. Every store is in-memory and lives
// exactly as long as the process.
type Router struct {
	config      *config.Config
	catalogRepo catalog.Repository
	ledgerSvc   ledger.Service
	authSvc     auth.Service
	flowSvc     flow.Service
	catalogSvc  catalog.Service
}

// NewRouter builds the full dependency graph: seeded catalog, empty
// ledger, payment stub, per-user flow sessions, identity stub.
func NewRouter(cfg *config.Config) (*Router, error) {
	gridSpec := seating.GridSpec{
		PremiumRows:   cfg.Seating.PremiumRows,
		PremiumPrice:  cfg.Seating.PremiumPrice,
		StandardPrice: cfg.Seating.StandardPrice,
		BookedRatio:   cfg.Seating.BookedRatio,
	}

	catalogRepo := catalog.NewRepository(
		catalog.SeedMovies(gridSpec),
		catalog.SeedTheaters(),
		catalog.SeedCities(),
	)
	catalogSvc := catalog.NewService(catalogRepo, gridSpec)

	ledgerSvc := ledger.NewService(ledger.NewRepository())

	gateway := payment.NewStubGateway(cfg.Payment.GatewayDelay)
	flowSvc := flow.NewService(catalogRepo, ledgerSvc, gateway, cfg.Booking.DefaultCity)

	authSvc, err := auth.NewService(auth.NewRepository(), cfg)
	if err != nil {
		return nil, err
	}

	return &Router{
		config:      cfg,
		catalogRepo: catalogRepo,
		catalogSvc:  catalogSvc,
		ledgerSvc:   ledgerSvc,
		authSvc:     authSvc,
		flowSvc:     flowSvc,
	}, nil
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupFlowRoutes(api)
		r.setupLedgerRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cineverse-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"movies":      len(r.catalogRepo.ListMovies()),
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authController := auth.NewController(r.authSvc)
	authRouter := auth.NewRouter(authController)
	authRouter.SetupRoutes(rg)
}

// setupCatalogRoutes configures the public catalog and the admin surface
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogController := catalog.NewController(r.catalogSvc)
	catalog.SetupCatalogRoutes(rg, catalogController)
	catalog.SetupAdminCatalogRoutes(rg, catalogController)
}

// setupFlowRoutes configures the booking session surface
func (r *Router) setupFlowRoutes(rg *gin.RouterGroup) {
	flowController := flow.NewController(r.flowSvc)
	flow.SetupFlowRoutes(rg, flowController)
}

// setupLedgerRoutes configures booking history and the admin viewer
func (r *Router) setupLedgerRoutes(rg *gin.RouterGroup) {
	ledgerController := ledger.NewController(r.ledgerSvc)
	ledger.SetupLedgerRoutes(rg, ledgerController)
}
