package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohazard555/sampro-api/internal/application/dto"
	"github.com/mohazard555/sampro-api/internal/domain"
	"github.com/mohazard555/sampro-api/internal/domain/entity"
	"github.com/mohazard555/sampro-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. El saldo corriente se
// maneja vía el libro diario, nunca por edición directa.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente nuevo. El saldo inicia en cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency == "" {
		in.Currency = "SYP"
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		TaxNumber:      in.TaxNumber,
		CreditLimit:    in.CreditLimit,
		CurrentBalance: decimal.Zero,
		Currency:       in.Currency,
		Notes:          in.Notes,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza los datos de contacto. No toca el saldo corriente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Address = in.Address
	customer.TaxNumber = in.TaxNumber
	customer.CreditLimit = in.CreditLimit
	if in.Currency != "" {
		customer.Currency = in.Currency
	}
	customer.Notes = in.Notes
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete desactiva un cliente. Si tiene facturas vinculadas se rechaza.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	linked, err := uc.repo.HasInvoices(ctx, id)
	if err != nil {
		return err
	}
	if linked {
		return domain.ErrHasLinkedInvoices
	}
	return uc.repo.Deactivate(ctx, id)
}

// List lista clientes con búsqueda por nombre y paginación.
func (uc *CustomerUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	customers, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		TaxNumber:      c.TaxNumber,
		CreditLimit:    c.CreditLimit,
		CurrentBalance: c.CurrentBalance,
		Currency:       c.Currency,
		Notes:          c.Notes,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
