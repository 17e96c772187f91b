package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagadco/tasnifoh/internal/application/dto"
	"github.com/nagadco/tasnifoh/internal/application/usecase"
	"github.com/nagadco/tasnifoh/internal/domain/entity"
	"github.com/nagadco/tasnifoh/internal/infrastructure/jsonstore"
	apphttp "github.com/nagadco/tasnifoh/internal/interfaces/http"
	"github.com/nagadco/tasnifoh/pkg/logger"
)

const testToken = "sirr-altasnifat"

func intPtr(v int) *int { return &v }

// buildTestApp wires a Fiber app against a seeded temp-dir store,
// with mutations gated by testToken.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	store := jsonstore.NewCategoryStore(dir)
	require.NoError(t, store.Save([]entity.Category{
		{ID: 1, NameAr: "مأكولات", NameEn: "Food",
			SearchKeyWordsAr: []string{}, SearchKeyWordsEn: []string{}},
		{ID: 55, NameAr: "مخابز", NameEn: "Bakeries", ParentID: intPtr(1),
			SearchKeyWordsAr: []string{"مخبز"}, SearchKeyWordsEn: []string{"bakery"}},
		{ID: 308, NameAr: "كوكيز", NameEn: "Cookies",
			SearchKeyWordsAr: []string{"مخبز الكوكيز"}, SearchKeyWordsEn: []string{}},
	}))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(store),
		SuggestUC:  usecase.NewSuggestUseCase(store),
		POIUC:      usecase.NewPOIUseCase(jsonstore.NewPOIStore(dir)),
		APIToken:   testToken,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(apphttp.HeaderAPIToken, token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSuggest_RanksExactKeywordFirst(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/categories/suggest?q=%D9%85%D8%AE%D8%A8%D8%B2", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SuggestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Matches, 2)
	assert.Equal(t, 55, out.Matches[0].Category.ID)
	assert.Equal(t, 308, out.Matches[1].Category.ID)
	require.NotNil(t, out.Matches[0].ParentCategory)
	assert.Equal(t, 1, out.Matches[0].ParentCategory.ID)
	assert.NotEmpty(t, out.Matches[0].MatchedKeywords)
}

func TestSuggest_BlankQueryReturnsEmptyList(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/categories/suggest?q=", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SuggestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotNil(t, out.Matches)
	assert.Empty(t, out.Matches)
}

func TestBest_NoQualifyingMatchReturns204(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/categories/best?q=qqq", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCreate_RequiresToken(t *testing.T) {
	app := buildTestApp(t)
	body := dto.CreateCategoryRequest{NameAr: "ورد وهدايا"}

	resp := doJSON(t, app, http.MethodPost, "/api/categories", "", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/categories", "wrong-token", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/categories", testToken, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 309, created.ID, "id continues from the collection max")
}

func TestCreate_DuplicateNameConflicts(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/categories", testToken,
		dto.CreateCategoryRequest{NameAr: "مَخابز"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "DUPLICATE_NAME")
}

func TestDelete_ParentWithChildrenConflicts(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodDelete, "/api/categories/1", testToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "HAS_CHILDREN")
}

func TestGetByID_UnknownReturns404(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/categories/4040", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestList_SearchFilters(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/categories/?search=%D9%83%D9%88%D9%83%D9%8A%D8%B2", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CategoryListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, 308, out.Items[0].ID)
}

func TestTokenMiddleware_QueryParamAccepted(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/categories/55/keywords?token="+testToken, "",
		dto.AddKeywordRequest{KeywordAr: "فرن"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated entity.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Contains(t, updated.SearchKeyWordsAr, "فرن")
}

func TestTokenMiddleware_EmptySecretAllowsAll(t *testing.T) {
	app := fiber.New()
	app.Post("/gated", apphttp.TokenMiddleware(""), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest(http.MethodPost, "/gated", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Level: "error"})))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
