package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"society-billing-service/config"
	"society-billing-service/services"
)

// ServiceContainer wires all services and their dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService          services.InterfaceJWTService
	redisService        services.InterfaceRedisService
	notificationService services.InterfaceNotificationService

	// Business services
	adminService     services.InterfaceAdminService
	houseService     services.InterfaceHouseService
	billService      services.InterfaceBillService
	fineService      services.InterfaceFineService
	statementService services.InterfaceStatementService
	documentService  services.InterfaceDocumentService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// Probe the shared cache; a dead redis only disables cross-instance caching
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis ping failed: %v, continuing without shared cache", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds all services in dependency order
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)
	c.notificationService = services.NewNotificationService(c.config)

	// Broker connect is best effort; billing works without it
	if err := c.notificationService.Connect(); err != nil {
		log.Printf("MQTT connect failed: %v, continuing without event notifications", err)
	}

	// Business services
	c.adminService = services.NewAdminService(c.db, c.config)
	c.houseService = services.NewHouseService(c.db, c.config)
	c.fineService = services.NewFineService(c.db, c.config)
	c.billService = services.NewBillService(c.db, c.config, c.fineService, c.notificationService)
	c.statementService = services.NewStatementService(c.db, c.config)
	c.documentService = services.NewDocumentService(c.config)
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "notification":
		return c.notificationService
	case "admin":
		return c.adminService
	case "house":
		return c.houseService
	case "bill":
		return c.billService
	case "fine":
		return c.fineService
	case "statement":
		return c.statementService
	case "document":
		return c.documentService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
