package usecase

import (
	"context"

	"bookstore-backend/internal/data/entity"
	"bookstore-backend/internal/data/repository"
	"bookstore-backend/internal/dto/request"

	"go.uber.org/zap"
)

type AddressService interface {
	Create(ctx context.Context, userID int64, req *request.AddressRequest) (*entity.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Address, error)
	GetByID(ctx context.Context, userID, addressID int64) (*entity.Address, error)
	Update(ctx context.Context, userID, addressID int64, req *request.AddressRequest) (*entity.Address, error)
	Delete(ctx context.Context, userID, addressID int64) error
}

type addressService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAddressService(repo *repository.Repository, log *zap.Logger) AddressService {
	return &addressService{
		repo: repo,
		log:  log.With(zap.String("service", "address")),
	}
}

func (as *addressService) Create(ctx context.Context, userID int64, req *request.AddressRequest) (*entity.Address, error) {
	address := &entity.Address{
		UserID:      userID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		AddressLine: req.AddressLine,
		PinCode:     req.PinCode,
		City:        req.City,
		State:       req.State,
		Type:        req.Type,
	}

	if err := as.repo.Address.Create(ctx, address); err != nil {
		return nil, err
	}

	as.log.Info("Address created",
		zap.Int64("address_id", address.ID),
		zap.Int64("user_id", userID),
	)
	return address, nil
}

func (as *addressService) ListByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	return as.repo.Address.FindByUser(ctx, userID)
}

func (as *addressService) GetByID(ctx context.Context, userID, addressID int64) (*entity.Address, error) {
	return as.owned(ctx, userID, addressID)
}

// owned loads the address and checks it belongs to the user. Acting on
// someone else's address is reported as ErrNotOwner, not as missing.
func (as *addressService) owned(ctx context.Context, userID, addressID int64) (*entity.Address, error) {
	address, err := as.repo.Address.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	if address.UserID != userID {
		return nil, ErrNotOwner
	}
	return address, nil
}

func (as *addressService) Update(ctx context.Context, userID, addressID int64, req *request.AddressRequest) (*entity.Address, error) {
	address, err := as.owned(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	address.FullName = req.FullName
	address.Phone = req.Phone
	address.AddressLine = req.AddressLine
	address.PinCode = req.PinCode
	address.City = req.City
	address.State = req.State
	address.Type = req.Type

	if err := as.repo.Address.Update(ctx, address); err != nil {
		return nil, err
	}

	as.log.Info("Address updated",
		zap.Int64("address_id", addressID),
		zap.Int64("user_id", userID),
	)
	return address, nil
}

func (as *addressService) Delete(ctx context.Context, userID, addressID int64) error {
	if _, err := as.owned(ctx, userID, addressID); err != nil {
		return err
	}

	if _, err := as.repo.Address.Delete(ctx, addressID); err != nil {
		return err
	}

	as.log.Info("Address deleted",
		zap.Int64("address_id", addressID),
		zap.Int64("user_id", userID),
	)
	return nil
}
