package service

import (
	"context"
	"errors"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/dto"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/model"
	"github.com/markusprap/web-penukaran-koin-sub001/internal/repository"

	"github.com/google/uuid"
)

type StoreService interface {
	Create(ctx context.Context, req dto.CreateStoreRequest) (*dto.StoreResponse, error)
	List(ctx context.Context) ([]dto.StoreResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateStoreRequest) (*dto.StoreResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type storeService struct {
	repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func (s *storeService) Create(ctx context.Context, req dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store := &model.Store{Name: req.Name, Address: req.Address, Active: true}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	resp := toStoreResponse(store)
	return &resp, nil
}

func (s *storeService) List(ctx context.Context) ([]dto.StoreResponse, error) {
	stores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StoreResponse, len(stores))
	for i := range stores {
		resp[i] = toStoreResponse(&stores[i])
	}
	return resp, nil
}

func (s *storeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("store not found")
	}
	if req.Name != "" {
		store.Name = req.Name
	}
	if req.Address != "" {
		store.Address = req.Address
	}
	if err := s.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	resp := toStoreResponse(store)
	return &resp, nil
}

func (s *storeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func toStoreResponse(s *model.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:      s.ID.String(),
		Name:    s.Name,
		Address: s.Address,
		Active:  s.Active,
	}
}
