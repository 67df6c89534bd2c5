// @title           Society Billing Service API
// @version         1.0
// @description     Housing society billing service: house registry, monthly bills, fines and statements.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"society-billing-service/config"
	"society-billing-service/models"
	"society-billing-service/routes"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("could not load .env file: %v", err)
		// Environment variables may be set another way, keep going.
	} else {
		config.Info(".env file loaded")
	}

	cfg := config.GetConfig()
	if err := cfg.ValidateTariff(); err != nil {
		log.Fatalf("invalid tariff configuration: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate failed: %v", err)
		}
	default:
		// AutoMigrate only adds new columns and tables.
		if err := autoMigrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, cfg, redisClient)

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	config.Info("server listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("server failed: %v", err)
		os.Exit(1)
	}
}

// initDB establishes the database connection
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate migrates all models (adds new columns and tables only)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.House{},
		&models.Bill{},
		&models.Fine{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and migrates from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	log.Println("warning: dropping and recreating all tables, all data will be lost")

	db.Exec("SET FOREIGN_KEY_CHECKS = 0")
	defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	var tables []string
	err := db.Raw("SHOW TABLES").Scan(&tables).Error
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table)).Error
		if err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	log.Println("recreating all tables")
	return autoMigrate(db)
}

// ensureAdminExists seeds a default operator account when none exist
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		defaultPassword := "admin123"
		if cfg.DefaultAdminPassword != "" {
			defaultPassword = cfg.DefaultAdminPassword
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("could not hash default operator password: %v", err)
			return
		}

		admin := models.Admin{
			Username: "admin",
			Password: string(hashedPassword),
		}

		result := db.Create(&admin)
		if result.Error != nil {
			log.Printf("could not create default operator account: %v", result.Error)
			return
		}

		log.Println("default operator account created (username: admin)")
	}
}
