package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahaavila/e-colect/internal/models/request_models"
	"github.com/ahaavila/e-colect/internal/services"
	"github.com/ahaavila/e-colect/pkg/uploads"
	"github.com/ahaavila/e-colect/pkg/utils"
)

type PointsController struct {
	pointService services.PointServiceInterface
	store        *uploads.Store
}

func NewPointsController(pointService services.PointServiceInterface, store *uploads.Store) *PointsController {
	return &PointsController{
		pointService: pointService,
		store:        store,
	}
}

// CreatePointHandler registers a collection point from a multipart form:
// the scalar fields, a comma-separated list of accepted item ids and one
// image file.
func (pc *PointsController) CreatePointHandler(c *gin.Context) {
	var req request_models.CreatePointRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrMissingImage)
		return
	}

	image, err := pc.store.Save(file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	point, err := pc.pointService.CreatePoint(c.Request.Context(), req, image)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, point, "Point created successfully")
}

// GetPointHandler returns one point plus the titles of the items it accepts.
func (pc *PointsController) GetPointHandler(c *gin.Context) {
	detail, err := pc.pointService.GetPoint(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Fetched point successfully")
}

// ListPointsHandler filters points by city, uf and accepted item ids.
func (pc *PointsController) ListPointsHandler(c *gin.Context) {
	points, err := pc.pointService.ListPoints(
		c.Request.Context(),
		c.Query("city"),
		c.Query("uf"),
		c.Query("items"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, points, "Fetched points successfully")
}
