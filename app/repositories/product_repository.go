package repositories

import (
	"errors"
	"math"

	"github.com/bkormos/portico/app/models"
	"github.com/bkormos/portico/pkg/orm"
	"gorm.io/gorm"
)

// ErrInvalidPrice is returned when asked to persist a price that is not a
// non-negative finite number. The form layer rejects non-numeric input
// earlier; this keeps the store from silently coercing bad data.
var ErrInvalidPrice = errors.New("invalid product price")

// ErrProductNotFound is returned when an update targets a missing row.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles database operations for Product.
// Admin gating happens in the route layer, not here.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func validPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0
}

// Create persists a new product.
func (r *ProductRepository) Create(name string, price float64, description string) (models.Product, error) {
	if !validPrice(price) {
		return models.Product{}, ErrInvalidPrice
	}

	p := models.Product{Name: name, Price: price, Description: description}
	err := orm.New(r.db).Create(&p)
	return p, err
}

// All returns every product, unordered.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := orm.New(r.db).Model(&models.Product{}).Get(&products)
	return products, err
}

// Update replaces name, price and description of an existing product.
func (r *ProductRepository) Update(id uint, name string, price float64, description string) error {
	if !validPrice(price) {
		return ErrInvalidPrice
	}

	var p models.Product
	err := orm.New(r.db).Model(&models.Product{}).Where("id = ?", id).First(&p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	p.Name = name
	p.Price = price
	p.Description = description
	return orm.New(r.db).Save(&p)
}

// Delete removes the product with the given id.
func (r *ProductRepository) Delete(id uint) error {
	_, err := orm.New(r.db).Where("id = ?", id).Delete(&models.Product{})
	return err
}
