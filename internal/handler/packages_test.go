package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arabello/hub-frontend-new/internal/domain"
	"github.com/arabello/hub-frontend-new/internal/dto"
	"github.com/arabello/hub-frontend-new/internal/render"
	"github.com/arabello/hub-frontend-new/internal/testutil"
	"github.com/arabello/hub-frontend-new/internal/usecase"
)

func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		FetchedAt:  time.Now(),
		LastUpdate: time.Unix(1700000000, 0),
		Entries: []domain.IndexEntry{
			{Name: "emoji", Title: "Emoji Pack", Author: "jane", Version: "1.0.0", Tags: []string{"fun"}, Description: "Emoji from https://github.com/jane/emoji"},
			{Name: "emoji", Title: "Emoji Pack", Author: "jane", Version: "1.1.0", Tags: []string{"fun"}, Description: "Emoji from https://github.com/jane/emoji"},
			{Name: "accents", Title: "Accents", Author: "ada", Version: "2.0.0", Tags: []string{"writing"}},
		},
	}
}

func setupRouter(source domain.IndexSource) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogUC := usecase.NewCatalogUseCase(source, []string{"emoji"})
	searchUC := usecase.NewSearchUseCase(catalogUC)
	h := New(catalogUC, searchUC, "Snippet Hub")

	r := gin.New()
	tpl, err := render.Templates()
	if err != nil {
		panic(err)
	}
	r.SetHTMLTemplate(tpl)
	h.RegisterRoutes(r)

	return r
}

func setupTestRouter() (*gin.Engine, *testutil.MockIndexSource) {
	source := new(testutil.MockIndexSource)
	source.On("Snapshot", mock.Anything).Return(testSnapshot(), nil)
	return setupRouter(source), source
}

func doRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListPackages(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/packages")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListPackagesResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "accents", resp.Items[0].Name)
	assert.Equal(t, "emoji", resp.Items[1].Name)
	assert.Equal(t, "1.1.0", resp.Items[1].Version)
}

func TestGetPackage(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/packages/emoji")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PackageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.1.0", resp.Version)
	assert.Equal(t, []string{"1.1.0", "1.0.0"}, resp.Versions)
	assert.Equal(t, "https://github.com/jane/emoji", resp.SourceURL)
}

func TestGetPackage_NotFound(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/packages/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListVersions(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/packages/emoji/versions")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListVersionsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"1.1.0", "1.0.0"}, resp.Versions)
}

func TestGetPackageVersion(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/packages/emoji/versions/1.0.0")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PackageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.0.0", resp.Version)
}

func TestGetPackageVersion_NotFound(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/packages/emoji/versions/9.9.9")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchPackages(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/search?q=emoji")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "emoji", resp.Query)
	assert.Equal(t, 1, resp.Total)
}

func TestSearchPackages_TagsOnly(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/search?tags=writing")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"writing"}, resp.Tags)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "accents", resp.Items[0].Name)
}

func TestListTags(t *testing.T) {
	r, _ := setupTestRouter()

	w := doRequest(r, "/api/v1/tags")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListTagsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestListPackages_IndexUnavailable(t *testing.T) {
	source := new(testutil.MockIndexSource)
	source.On("Snapshot", mock.Anything).Return(nil, domain.ErrIndexUnavailable)
	r := setupRouter(source)

	w := doRequest(r, "/api/v1/packages")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
