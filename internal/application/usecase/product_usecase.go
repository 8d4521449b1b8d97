package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/facturapro/facturapro-api/internal/application/dto"
	"github.com/facturapro/facturapro-api/internal/domain"
	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/internal/domain/repository"
	"github.com/facturapro/facturapro-api/pkg/idgen"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
	ids  idgen.Generator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, ids idgen.Generator) *ProductUseCase {
	return &ProductUseCase{repo: repo, ids: ids}
}

func validateProduct(in dto.CreateProductRequest) error {
	if in.Name == "" || in.Code == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.TaxRate.LessThan(decimal.Zero) || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          uc.ids.NewID(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		TaxRate:     in.TaxRate,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for i := range list {
		out = append(out, toProductResponse(&list[i]))
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update reemplaza el registro completo del producto. La identidad es
// inmutable; precio e IVA son editables. Las copias embebidas en facturas
// guardadas no se actualizan retroactivamente.
func (uc *ProductUseCase) Update(id string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	product := &entity.Product{
		ID:          id,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		TaxRate:     in.TaxRate,
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Sin cascada sobre facturas guardadas.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
	}
}
