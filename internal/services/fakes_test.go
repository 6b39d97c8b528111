package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/platform/gcp"
	"github.com/zenavi/storefront-backend/internal/types"
)

type fakeImageService struct {
	uploadErr   error
	deleteErr   error
	uploads     []string
	deletedURLs []string
}

func (f *fakeImageService) Upload(ctx context.Context, category gcp.BucketCategory, filename string, file io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s-%d", category, filename, len(f.uploads))
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeImageService) DeleteByURL(ctx context.Context, url string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedURLs = append(f.deletedURLs, url)
	return nil
}

type fakeHeroSlideRepo struct {
	rows []*types.HeroSlide
}

func (f *fakeHeroSlideRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.HeroSlide, error) {
	return f.rows, nil
}

func (f *fakeHeroSlideRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.HeroSlide, error) {
	var out []*types.HeroSlide
	for _, row := range f.rows {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeHeroSlideRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.HeroSlide, error) {
	var out []*types.HeroSlide
	for _, row := range f.rows {
		for _, id := range ids {
			if row.ID == id {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (f *fakeHeroSlideRepo) Create(ctx context.Context, tx *gorm.DB, slide *types.HeroSlide) (*types.HeroSlide, error) {
	if slide.ID == uuid.Nil {
		slide.ID = uuid.New()
	}
	f.rows = append(f.rows, slide)
	return slide, nil
}

func (f *fakeHeroSlideRepo) Update(ctx context.Context, tx *gorm.DB, slide *types.HeroSlide) (*types.HeroSlide, error) {
	for i, row := range f.rows {
		if row.ID == slide.ID {
			f.rows[i] = slide
			return slide, nil
		}
	}
	return nil, errors.New("slide not found")
}

func (f *fakeHeroSlideRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductRepo struct {
	rows []*types.Product
}

func (f *fakeProductRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	return f.rows, nil
}

func (f *fakeProductRepo) ListActiveWithPrimaryImage(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Product, error) {
	var out []*types.Product
	for _, row := range f.rows {
		if row.IsActive {
			out = append(out, row)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
	var out []*types.Product
	for _, row := range f.rows {
		for _, id := range ids {
			if row.ID == id {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.rows = append(f.rows, product)
	return product, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	for i, row := range f.rows {
		if row.ID == product.ID {
			f.rows[i] = product
			return product, nil
		}
	}
	return nil, errors.New("product not found")
}

func (f *fakeProductRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductImageRepo struct {
	rows []*types.ProductImage
}

func (f *fakeProductImageRepo) ListByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.ProductImage, error) {
	var out []*types.ProductImage
	for _, row := range f.rows {
		if row.ProductID == productID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeProductImageRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ProductImage, error) {
	var out []*types.ProductImage
	for _, row := range f.rows {
		for _, id := range ids {
			if row.ID == id {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (f *fakeProductImageRepo) Create(ctx context.Context, tx *gorm.DB, image *types.ProductImage) (*types.ProductImage, error) {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	f.rows = append(f.rows, image)
	return image, nil
}

func (f *fakeProductImageRepo) SetPrimary(ctx context.Context, tx *gorm.DB, productID, imageID uuid.UUID) error {
	for _, row := range f.rows {
		if row.ProductID == productID {
			row.IsPrimary = row.ID == imageID
		}
	}
	return nil
}

func (f *fakeProductImageRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}
