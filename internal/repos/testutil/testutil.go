package testutil

import (
	"errors"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			dbErr = err
			return
		}

		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
			dbErr = err
			return
		}

		if err := autoMigrateAll(db); err != nil {
			dbErr = err
			return
		}
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repo integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

// autoMigrateAll builds the same schema the server boots with, including
// the cascade FKs and the single-primary-image index, so the integration
// tests exercise the production constraints.
func autoMigrateAll(db *gorm.DB) error {
	if err := migrateTables(db); err != nil {
		return err
	}
	statements := []string{
		`ALTER TABLE "product_image"
		DROP CONSTRAINT IF EXISTS "fk_product_image_product_id";
		ALTER TABLE "product_image"
		ADD CONSTRAINT "fk_product_image_product_id"
		FOREIGN KEY ("product_id")
		REFERENCES "product"("id")
		ON DELETE CASCADE`,
		`ALTER TABLE "review"
		DROP CONSTRAINT IF EXISTS "fk_review_product_id";
		ALTER TABLE "review"
		ADD CONSTRAINT "fk_review_product_id"
		FOREIGN KEY ("product_id")
		REFERENCES "product"("id")
		ON DELETE CASCADE`,
		`CREATE UNIQUE INDEX IF NOT EXISTS "uniq_product_image_primary"
		ON "product_image" ("product_id")
		WHERE "is_primary"`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func migrateTables(db *gorm.DB) error {
	return db.AutoMigrate(
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
}
