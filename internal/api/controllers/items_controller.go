package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahaavila/e-colect/internal/models/request_models"
	"github.com/ahaavila/e-colect/internal/services"
	"github.com/ahaavila/e-colect/pkg/uploads"
	"github.com/ahaavila/e-colect/pkg/utils"
)

type ItemsController struct {
	itemService services.ItemServiceInterface
	store       *uploads.Store
}

func NewItemsController(itemService services.ItemServiceInterface, store *uploads.Store) *ItemsController {
	return &ItemsController{
		itemService: itemService,
		store:       store,
	}
}

// ListItemsHandler returns every item category with its public image URL.
func (ic *ItemsController) ListItemsHandler(c *gin.Context) {
	items, err := ic.itemService.ListItems(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Fetched items successfully")
}

// CreateItemHandler registers a new item category from a multipart form
// with a title and an image file. Admin only.
func (ic *ItemsController) CreateItemHandler(c *gin.Context) {
	var req request_models.CreateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrMissingImage)
		return
	}

	image, err := ic.store.Save(file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	item, err := ic.itemService.CreateItem(c.Request.Context(), req.Title, image)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Item created successfully")
}
