package productrepo

import (
	"context"
	"errors"
	"strings"

	"delivery-api/internal/core/domain/model/product"
	"delivery-api/internal/pkg/errs"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("product", p.ID(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every product ordered by name.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	return r.find(r.db.WithContext(ctx))
}

// GetByNameContaining matches products whose name contains the fragment, ignoring case.
// LIKE wildcards in the fragment are matched literally.
func (r *GormProductRepository) GetByNameContaining(ctx context.Context, name string) ([]*product.Product, error) {
	pattern := "%" + likeEscaper.Replace(name) + "%"
	return r.find(r.db.WithContext(ctx).Where("name ILIKE ?", pattern))
}

func (r *GormProductRepository) find(db *gorm.DB) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := db.Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// Exists reports whether a product with the given ID is stored.
func (r *GormProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a product. Deleting a missing product is not an error.
func (r *GormProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id).Error
}
