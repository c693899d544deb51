package provider

import (
	"time"

	"github.com/banarasikart/bsk-api/internal/cache"
	"github.com/banarasikart/bsk-api/internal/config"
	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/queue"
	"github.com/banarasikart/bsk-api/internal/repository"
	"github.com/banarasikart/bsk-api/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	StatsRepo    repository.StatsRepository

	// Services
	CategoryService *service.CategoryService
	ProductService  *service.ProductService
	CartService     *service.CartService
	OrderService    *service.OrderService
	StatsService    *service.StatsService
	UploadService   *service.UploadService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.StatsRepo = repository.NewStatsRepository(db)
}

func (c *Container) initServices() {
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartRepo, c.QueueClient)
	c.StatsService = service.NewStatsService(
		c.StatsRepo,
		c.OrderRepo,
		c.Config.Stats.LowStockThreshold,
		c.Config.Stats.RecentOrders,
		time.Duration(c.Config.Stats.CacheTTLSeconds)*time.Second,
	)
	c.UploadService = service.NewUploadService(&c.Config.Upload, "uploads", "/uploads")
}
