package billing

import (
	"github.com/facturapro/facturapro-api/internal/application/dto"
	"github.com/facturapro/facturapro-api/internal/domain"
	"github.com/facturapro/facturapro-api/internal/domain/entity"
	"github.com/facturapro/facturapro-api/internal/domain/repository"
	"github.com/facturapro/facturapro-api/pkg/idgen"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	ids  idgen.Generator
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, ids idgen.Generator) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, ids: ids}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := fromCustomerRequest(uc.ids.NewID(), in)
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, toCustomerResponse(&list[i]))
	}
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update reemplaza el registro completo del cliente. La identidad es
// inmutable. Las copias embebidas en facturas guardadas no se actualizan.
func (uc *CustomerUseCase) Update(id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	customer := fromCustomerRequest(id, in)
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID. Sin cascada: las facturas existentes
// conservan su copia del cliente.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func fromCustomerRequest(id string, in dto.CreateCustomerRequest) *entity.Customer {
	return &entity.Customer{
		ID:         id,
		Name:       in.Name,
		TaxID:      in.TaxID,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Notes:      in.Notes,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		TaxID:      c.TaxID,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Country:    c.Country,
		Notes:      c.Notes,
	}
}
