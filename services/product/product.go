// Package productservice serves the catalog: filtered listing for the shop
// page and CRUD for the admin console.
package productservice

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tdat0411/laptopshop-api/models"
)

var ErrProductNotFound = errors.New("product not found")

const DefaultPageSize = 10

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Criteria are the optional shop-page filters. Factory and Target match any
// of the given values and AND with each other; Price holds bucket labels
// whose ranges OR together before ANDing with the rest.
type Criteria struct {
	Factory []string
	Target  []string
	Price   []string
	Page    int
	Size    int
}

// Price bucket labels as they appear in the shop URL, each mapping to a
// half-open VND range [min, max).
var priceBuckets = map[string][2]float64{
	"duoi-10trieu": {0, 10_000_000},
	"10-15trieu":   {10_000_000, 15_000_000},
	"15-20trieu":   {15_000_000, 20_000_000},
	"tren-20trieu": {20_000_000, 2_000_000_000},
}

// List returns one catalog page plus the total match count. No criteria
// means the unfiltered catalog.
func (s *Service) List(ctx context.Context, c Criteria) ([]models.Product, int64, error) {
	page := c.Page
	if page < 1 {
		page = 1
	}
	size := c.Size
	if size < 1 {
		size = DefaultPageSize
	}

	query := s.db.WithContext(ctx).Model(&models.Product{})

	if len(c.Factory) > 0 {
		query = query.Where("factory IN ?", c.Factory)
	}
	if len(c.Target) > 0 {
		query = query.Where("target IN ?", c.Target)
	}
	if priceOr := s.buildPriceFilter(c.Price); priceOr != nil {
		query = query.Where(priceOr)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.Order("id asc").
		Offset((page - 1) * size).
		Limit(size).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// buildPriceFilter turns bucket labels into one OR-group of range clauses.
// Unrecognized labels contribute nothing; all-unrecognized (or empty) input
// yields nil, i.e. no price clause at all.
func (s *Service) buildPriceFilter(labels []string) *gorm.DB {
	var group *gorm.DB
	for _, label := range labels {
		bucket, ok := priceBuckets[label]
		if !ok {
			continue
		}
		if group == nil {
			group = s.db.Where("price >= ? AND price < ?", bucket[0], bucket[1])
		} else {
			group = group.Or("price >= ? AND price < ?", bucket[0], bucket[1])
		}
	}
	return group
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *Service) Create(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *Service) Update(ctx context.Context, product *models.Product) error {
	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"price":       product.Price,
			"image":       product.Image,
			"detail_desc": product.DetailDesc,
			"short_desc":  product.ShortDesc,
			"quantity":    product.Quantity,
			"factory":     product.Factory,
			"target":      product.Target,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// All returns the full catalog, for the Excel export.
func (s *Service) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
