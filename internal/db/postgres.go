package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
	"github.com/zenavi/storefront-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "zenavi", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.SiteSettings{},
		&types.HeroSlide{},
		&types.Collection{},
		&types.Category{},
		&types.Product{},
		&types.ProductImage{},
		&types.MediaMention{},
		&types.Review{},
		&types.Testimonial{},
		&types.ContactSubmission{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	if err := s.db.Exec(`
		ALTER TABLE "product_image"
		DROP CONSTRAINT IF EXISTS "fk_product_image_product_id";
		ALTER TABLE "product_image"
		ADD CONSTRAINT "fk_product_image_product_id"
		FOREIGN KEY ("product_id")
		REFERENCES "product"("id")
		ON DELETE CASCADE
	`).Error; err != nil {
		return fmt.Errorf("failed to add fk_product_image_product_id: %w", err)
	}
	if err := s.db.Exec(`
		ALTER TABLE "review"
		DROP CONSTRAINT IF EXISTS "fk_review_product_id";
		ALTER TABLE "review"
		ADD CONSTRAINT "fk_review_product_id"
		FOREIGN KEY ("product_id")
		REFERENCES "product"("id")
		ON DELETE CASCADE
	`).Error; err != nil {
		return fmt.Errorf("failed to add fk_review_product_id: %w", err)
	}

	// At most one primary image per product, enforced by the store rather
	// than by client-side write ordering.
	if err := s.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS "uniq_product_image_primary"
		ON "product_image" ("product_id")
		WHERE "is_primary"
	`).Error; err != nil {
		return fmt.Errorf("failed to add uniq_product_image_primary: %w", err)
	}

	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
