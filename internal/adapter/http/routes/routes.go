package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	_ "github.com/heaponte4/aerea-sub000/docs" // generated by swag init
	"github.com/heaponte4/aerea-sub000/internal/adapter/http/handlers"
	"github.com/heaponte4/aerea-sub000/internal/adapter/persistence/memory"
	"github.com/heaponte4/aerea-sub000/internal/adapter/persistence/repository"
	"github.com/heaponte4/aerea-sub000/internal/config"
	"github.com/heaponte4/aerea-sub000/internal/infrastructure/catalog"
	"github.com/heaponte4/aerea-sub000/internal/infrastructure/database"
	"github.com/heaponte4/aerea-sub000/internal/infrastructure/logging"
	"github.com/heaponte4/aerea-sub000/internal/usecase"
	"github.com/heaponte4/aerea-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Catalog      *handlers.CatalogHandler
	Photographer *handlers.PhotographerHandler
	Booking      *handlers.BookingHandler
	Order        *handlers.OrderHandler
	Payment      *handlers.PaymentHandler
}

// Repositories is the persistence set behind the use cases.
type Repositories struct {
	Catalog           interfaces.ICatalogRepository
	Photographers     interfaces.IPhotographerRepository
	ScheduledServices interfaces.IScheduledServiceRepository
	Orders            interfaces.IOrderRepository
	Payments          interfaces.IPaymentRepository
}

// Run will start the server
func Run() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	repos, err := openRepositories(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open repositories")
	}

	router := NewRouter(NewHandlers(repos, log), log)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.WithFields(logrus.Fields{"port": cfg.Port, "store": cfg.StoreBackend}).Info("starting http server")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.WithError(err).Fatal("Failed to startup the application")
	}
}

// openRepositories loads the catalog file and opens the configured store.
// Photographers listed in the catalog are seeded when SeedOnStart is set.
func openRepositories(ctx context.Context, cfg config.Config, log *logrus.Logger) (Repositories, error) {
	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return Repositories{}, err
	}
	repos := Repositories{Catalog: catalog.NewRepository(cat)}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		store := memory.NewStore()
		repos.Photographers = store.Photographers()
		repos.ScheduledServices = store.ScheduledServices()
		repos.Orders = store.Orders()
		repos.Payments = store.Payments()
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Repositories{}, err
		}
		repos.Photographers = repository.NewPhotographerDynamoRepository(ddb)
		repos.ScheduledServices = repository.NewScheduledServiceDynamoRepository(ddb)
		repos.Orders = repository.NewOrderDynamoRepository(ddb)
		repos.Payments = repository.NewPaymentDynamoRepository(ddb)
	default:
		return Repositories{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if cfg.SeedOnStart {
		if err := catalog.SeedPhotographers(ctx, repos.Photographers, cat, log); err != nil {
			return Repositories{}, fmt.Errorf("seed photographers: %w", err)
		}
	}
	return repos, nil
}

// NewHandlers wires the use cases over repos.
func NewHandlers(repos Repositories, log *logrus.Logger) Handlers {
	catalogUseCase := usecase.NewCatalogUseCase(repos.Catalog)
	photographerUseCase := usecase.NewPhotographerUseCase(repos.Photographers, repos.ScheduledServices, repos.Catalog, log)
	bookingUseCase := usecase.NewBookingUseCase(repos.ScheduledServices, repos.Catalog, repos.Photographers, log)
	orderUseCase := usecase.NewOrderUseCase(repos.Orders, repos.ScheduledServices, repos.Catalog, repos.Photographers, log)
	paymentUseCase := usecase.NewPaymentUseCase(repos.Payments, repos.Orders, log)

	return Handlers{
		Catalog:      handlers.NewCatalogHandler(catalogUseCase),
		Photographer: handlers.NewPhotographerHandler(photographerUseCase),
		Booking:      handlers.NewBookingHandler(bookingUseCase),
		Order:        handlers.NewOrderHandler(orderUseCase),
		Payment:      handlers.NewPaymentHandler(paymentUseCase),
	}
}

// NewRouter mounts the public routes on a fresh engine.
func NewRouter(h Handlers, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog, h.Photographer)
	addPhotographerRoutes(v1, h.Photographer)
	addPropertyRoutes(v1, h.Booking, h.Order)
	addOrderRoutes(v1, h.Order, h.Payment)
	addPaymentRoutes(v1, h.Payment)
	return router
}

func setMiddlewares(router *gin.Engine, log *logrus.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			log.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.FullPath(),
				"status": c.Writer.Status(),
			}).WithError(e.Err).Error("request failed")
		}
	})
}
