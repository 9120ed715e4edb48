package services

import (
	"context"
	"log"

	"github.com/ahaavila/e-colect/internal/models/db_models"
	"github.com/ahaavila/e-colect/internal/models/response_models"
	"github.com/ahaavila/e-colect/internal/repositories"
	"github.com/ahaavila/e-colect/pkg/utils"
)

type ItemServiceInterface interface {
	ListItems(ctx context.Context) ([]response_models.ItemResponse, error)
	CreateItem(ctx context.Context, title, image string) (*response_models.ItemResponse, error)
}

type ItemService struct {
	itemRepo     repositories.ItemRepository
	assetBaseURL string
}

func NewItemService(itemRepo repositories.ItemRepository, assetBaseURL string) ItemServiceInterface {
	return &ItemService{
		itemRepo:     itemRepo,
		assetBaseURL: assetBaseURL,
	}
}

func (s *ItemService) ListItems(ctx context.Context) ([]response_models.ItemResponse, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		log.Printf("Listing items failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, response_models.ItemResponse{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: utils.JoinAssetURL(s.assetBaseURL, item.Image),
		})
	}

	return responses, nil
}

func (s *ItemService) CreateItem(ctx context.Context, title, image string) (*response_models.ItemResponse, error) {
	item := &db_models.Item{
		Title: title,
		Image: image,
	}

	if err := s.itemRepo.CreateItem(ctx, item); err != nil {
		log.Printf("Creating item failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ItemResponse{
		ID:       item.ID,
		Title:    item.Title,
		ImageURL: utils.JoinAssetURL(s.assetBaseURL, item.Image),
	}, nil
}
