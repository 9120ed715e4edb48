package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahaavila/e-colect/internal/infra"
	"github.com/ahaavila/e-colect/internal/repositories"
	"github.com/ahaavila/e-colect/internal/services"
	"github.com/ahaavila/e-colect/pkg/uploads"
	"github.com/ahaavila/e-colect/pkg/utils"
)

const testAssetBaseURL = "http://localhost:3333/uploads/"

// newTestRouter wires the public routes over a throwaway database and
// upload directory, mirroring the wiring in cmd/app.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	itemRepo := repositories.NewItemRepository(db)
	pointRepo := repositories.NewPointRepository(db)

	itemsController := NewItemsController(services.NewItemService(itemRepo, testAssetBaseURL), store)
	pointsController := NewPointsController(services.NewPointService(pointRepo, itemRepo, testAssetBaseURL), store)

	r := gin.New()
	r.GET("/items", itemsController.ListItemsHandler)
	r.POST("/points", pointsController.CreatePointHandler)
	r.GET("/points", pointsController.ListPointsHandler)
	r.GET("/points/:id", pointsController.GetPointHandler)

	return r
}

// pointForm builds the multipart body the create endpoint expects. A nil
// fields map uses a complete valid form; withImage controls the file part.
func pointForm(t *testing.T, overrides map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	fields := map[string]string{
		"name":      "Mercado do Bairro",
		"email":     "contato@mercado.com",
		"whatsapp":  "11999999999",
		"latitude":  "-23.68",
		"longitude": "-46.62",
		"city":      "Diadema",
		"uf":        "SP",
		"items":     "1,2",
	}
	for k, v := range overrides {
		if v == "" {
			delete(fields, k)
			continue
		}
		fields[k] = v
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "mercado.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func doRequest(r *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func createPoint(t *testing.T, r *gin.Engine, overrides map[string]string) map[string]interface{} {
	t.Helper()

	body, contentType := pointForm(t, overrides, true)
	w := doRequest(r, http.MethodPost, "/points", body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data, ok := decodeResponse(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	return data
}
