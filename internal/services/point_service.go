package services

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/ahaavila/e-colect/internal/models/db_models"
	"github.com/ahaavila/e-colect/internal/models/request_models"
	"github.com/ahaavila/e-colect/internal/models/response_models"
	"github.com/ahaavila/e-colect/internal/repositories"
	"github.com/ahaavila/e-colect/pkg/utils"
)

type PointServiceInterface interface {
	CreatePoint(ctx context.Context, req request_models.CreatePointRequest, image string) (*response_models.PointResponse, error)
	GetPoint(ctx context.Context, idParam string) (*response_models.PointDetailResponse, error)
	ListPoints(ctx context.Context, city, uf, itemsParam string) ([]response_models.PointResponse, error)
}

type PointService struct {
	pointRepo    repositories.PointRepository
	itemRepo     repositories.ItemRepository
	assetBaseURL string
}

func NewPointService(
	pointRepo repositories.PointRepository,
	itemRepo repositories.ItemRepository,
	assetBaseURL string,
) PointServiceInterface {
	return &PointService{
		pointRepo:    pointRepo,
		itemRepo:     itemRepo,
		assetBaseURL: assetBaseURL,
	}
}

// ParseItemIDs parses a comma-separated list of item ids. Tokens are
// trimmed, empty tokens are skipped and duplicates collapse to a single
// occurrence preserving first-seen order. A non-numeric token fails the
// whole list.
func ParseItemIDs(raw string) ([]uint, error) {
	seen := make(map[uint]bool)
	var ids []uint

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		id, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return nil, utils.ErrInvalidItemList
		}

		if !seen[uint(id)] {
			seen[uint(id)] = true
			ids = append(ids, uint(id))
		}
	}

	return ids, nil
}

func (s *PointService) CreatePoint(ctx context.Context, req request_models.CreatePointRequest, image string) (*response_models.PointResponse, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, utils.ErrInvalidCoordinates
	}

	itemIDs, err := ParseItemIDs(req.Items)
	if err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, utils.ErrEmptyItemList
	}

	count, err := s.itemRepo.CountByIDs(ctx, itemIDs)
	if err != nil {
		log.Printf("Checking item ids failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if count != int64(len(itemIDs)) {
		return nil, utils.ErrInvalidItemList
	}

	point := &db_models.Point{
		Image:     image,
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		City:      req.City,
		UF:        strings.ToUpper(req.UF),
	}

	if err := s.pointRepo.CreatePoint(ctx, point, itemIDs); err != nil {
		log.Printf("Creating point failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	response := s.toPointResponse(point)
	return &response, nil
}

func (s *PointService) GetPoint(ctx context.Context, idParam string) (*response_models.PointDetailResponse, error) {
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		return nil, utils.ErrInvalidPointID
	}

	point, err := s.pointRepo.GetPointByID(ctx, uint(id))
	if err != nil {
		log.Printf("Fetching point %d failed: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if point == nil {
		return nil, utils.ErrPointNotFound
	}

	titles, err := s.pointRepo.GetPointItemTitles(ctx, point.ID)
	if err != nil {
		log.Printf("Fetching items of point %d failed: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ItemTitle, 0, len(titles))
	for _, title := range titles {
		items = append(items, response_models.ItemTitle{Title: title})
	}

	return &response_models.PointDetailResponse{
		Point: s.toPointResponse(point),
		Items: items,
	}, nil
}

func (s *PointService) ListPoints(ctx context.Context, city, uf, itemsParam string) ([]response_models.PointResponse, error) {
	itemIDs, err := ParseItemIDs(itemsParam)
	if err != nil {
		return nil, err
	}

	// Exact-match filter semantics: an empty id set or a blank city/uf can
	// never match a persisted point, so skip the query.
	if len(itemIDs) == 0 || city == "" || uf == "" {
		return []response_models.PointResponse{}, nil
	}

	points, err := s.pointRepo.ListPoints(ctx, city, strings.ToUpper(uf), itemIDs)
	if err != nil {
		log.Printf("Listing points failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PointResponse, 0, len(points))
	for i := range points {
		responses = append(responses, s.toPointResponse(&points[i]))
	}

	return responses, nil
}

func (s *PointService) toPointResponse(point *db_models.Point) response_models.PointResponse {
	return response_models.PointResponse{
		ID:        point.ID,
		Image:     point.Image,
		ImageURL:  utils.JoinAssetURL(s.assetBaseURL, point.Image),
		Name:      point.Name,
		Email:     point.Email,
		Whatsapp:  point.Whatsapp,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		City:      point.City,
		UF:        point.UF,
	}
}
