package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/platform/gcp"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

// ProductAdminService edits products and their image rows. Product
// fields and image blobs are managed separately: image uploads create
// product_image rows pointing at the blob's public URL.
type ProductAdminService interface {
	List(ctx context.Context) ([]*types.Product, error)
	Save(ctx context.Context, product *types.Product) ([]*types.Product, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.Product, error)

	ListImages(ctx context.Context, productID uuid.UUID) ([]*types.ProductImage, error)
	AddImage(ctx context.Context, productID uuid.UUID, filename string, file io.Reader, displayOrder *int, primary bool) ([]*types.ProductImage, error)
	SetPrimaryImage(ctx context.Context, productID, imageID uuid.UUID) ([]*types.ProductImage, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) ([]*types.ProductImage, error)
}

type productAdminService struct {
	db           *gorm.DB
	log          *logger.Logger
	productRepo  repos.ProductRepo
	imageRepo    repos.ProductImageRepo
	imageService ImageService
}

func NewProductAdminService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo, imageRepo repos.ProductImageRepo, imageService ImageService) ProductAdminService {
	return &productAdminService{
		db:           db,
		log:          log.With("service", "ProductAdminService"),
		productRepo:  productRepo,
		imageRepo:    imageRepo,
		imageService: imageService,
	}
}

func (pas *productAdminService) List(ctx context.Context) ([]*types.Product, error) {
	rows, err := pas.productRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return rows, nil
}

func (pas *productAdminService) Save(ctx context.Context, product *types.Product) ([]*types.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalid)
	}
	if product.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalid)
	}
	if product.SalePrice != nil && *product.SalePrice <= 0 {
		return nil, fmt.Errorf("%w: sale price must be positive", ErrInvalid)
	}
	switch product.MaterialType {
	case "":
		product.MaterialType = types.MaterialTypeGold
	case types.MaterialTypeGold, types.MaterialTypeDiamond:
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", ErrInvalid, product.MaterialType)
	}
	switch product.Karat {
	case "":
		product.Karat = types.Karat18K
	case types.Karat14K, types.Karat18K, types.Karat22K:
	default:
		return nil, fmt.Errorf("%w: unknown karat %q", ErrInvalid, product.Karat)
	}
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}

	if product.ID == uuid.Nil {
		if _, err := pas.productRepo.Create(ctx, nil, product); err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
	} else {
		existing, err := pas.productRepo.GetByIDs(ctx, nil, []uuid.UUID{product.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load product: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, product.ID)
		}
		if _, err := pas.productRepo.Update(ctx, nil, product); err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return pas.List(ctx)
}

// Delete removes each image blob best-effort, then the product row.
// Image rows go with the product via the cascading FK.
func (pas *productAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.Product, error) {
	existing, err := pas.productRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if len(existing) == 0 {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	images, err := pas.imageRepo.ListByProductID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product images: %w", err)
	}
	for _, img := range images {
		if err := pas.imageService.DeleteByURL(ctx, img.ImageURL); err != nil {
			pas.log.Warn("failed to delete product image blob (ignored)", "url", img.ImageURL, "error", err)
		}
	}
	if err := pas.productRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return pas.List(ctx)
}

func (pas *productAdminService) ListImages(ctx context.Context, productID uuid.UUID) ([]*types.ProductImage, error) {
	rows, err := pas.imageRepo.ListByProductID(ctx, nil, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product images: %w", err)
	}
	return rows, nil
}

// AddImage uploads the blob first, then inserts the row. The first
// image of a product becomes primary regardless of the flag so the
// listing always has a thumbnail. A nil display order appends the
// image after the existing ones.
func (pas *productAdminService) AddImage(ctx context.Context, productID uuid.UUID, filename string, file io.Reader, displayOrder *int, primary bool) ([]*types.ProductImage, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: image file required", ErrInvalid)
	}
	owners, err := pas.productRepo.GetByIDs(ctx, nil, []uuid.UUID{productID})
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if len(owners) == 0 {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}

	existing, err := pas.imageRepo.ListByProductID(ctx, nil, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product images: %w", err)
	}
	if len(existing) == 0 {
		primary = true
	}
	order := len(existing)
	if displayOrder != nil {
		order = *displayOrder
	}

	url, err := pas.imageService.Upload(ctx, gcp.BucketCategoryProductImages, filename, file)
	if err != nil {
		return nil, err
	}

	img := &types.ProductImage{
		ProductID:    productID,
		ImageURL:     url,
		DisplayOrder: order,
	}
	if _, err := pas.imageRepo.Create(ctx, nil, img); err != nil {
		return nil, fmt.Errorf("failed to create product image: %w", err)
	}
	if primary {
		if err := pas.imageRepo.SetPrimary(ctx, nil, productID, img.ID); err != nil {
			return nil, fmt.Errorf("failed to set primary image: %w", err)
		}
	}
	return pas.ListImages(ctx, productID)
}

func (pas *productAdminService) SetPrimaryImage(ctx context.Context, productID, imageID uuid.UUID) ([]*types.ProductImage, error) {
	images, err := pas.imageRepo.GetByIDs(ctx, nil, []uuid.UUID{imageID})
	if err != nil {
		return nil, fmt.Errorf("failed to load product image: %w", err)
	}
	if len(images) == 0 || images[0].ProductID != productID {
		return nil, fmt.Errorf("%w: image %s on product %s", ErrNotFound, imageID, productID)
	}
	if err := pas.imageRepo.SetPrimary(ctx, nil, productID, imageID); err != nil {
		return nil, fmt.Errorf("failed to set primary image: %w", err)
	}
	return pas.ListImages(ctx, productID)
}

func (pas *productAdminService) DeleteImage(ctx context.Context, imageID uuid.UUID) ([]*types.ProductImage, error) {
	images, err := pas.imageRepo.GetByIDs(ctx, nil, []uuid.UUID{imageID})
	if err != nil {
		return nil, fmt.Errorf("failed to load product image: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: image %s", ErrNotFound, imageID)
	}
	img := images[0]
	if err := pas.imageService.DeleteByURL(ctx, img.ImageURL); err != nil {
		pas.log.Warn("failed to delete product image blob (ignored)", "url", img.ImageURL, "error", err)
	}
	if err := pas.imageRepo.DeleteByID(ctx, nil, imageID); err != nil {
		return nil, fmt.Errorf("failed to delete product image: %w", err)
	}
	return pas.ListImages(ctx, img.ProductID)
}
