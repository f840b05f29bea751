package main

import (
	"context"
	"log"

	"wallfit/internal/config"
	"wallfit/internal/db"
	"wallfit/internal/model"
	"wallfit/internal/repository"
	"wallfit/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Program{},
		&model.Group{},
		&model.Post{},
		&model.Reply{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seedService := service.NewSeedService(
		repository.NewUserRepository(gormDB),
		repository.NewGroupRepository(gormDB),
		repository.NewPostRepository(gormDB),
	)

	result, err := seedService.SeedDemo(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", result.Users)
	log.Printf("  - Groups created: %d", result.Groups)
	log.Printf("  - Posts created: %d", result.Posts)
	log.Printf("Demo accounts use the password %q", "wallfit123")
}
