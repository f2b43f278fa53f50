package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treinamento/produtos-service/internal/cfg"
	"github.com/treinamento/produtos-service/internal/domain"
	"github.com/treinamento/produtos-service/internal/repository/memory"
	"github.com/treinamento/produtos-service/internal/usecase"
	"github.com/treinamento/produtos-service/pkg/clock"
	"github.com/treinamento/produtos-service/pkg/logger"
)

var testCfg = &cfg.HTTPConfig{DefaultPageSize: 20, MaxPageSize: 100}

type categoryJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

type productJSON struct {
	ID          int64         `json:"id"`
	Description *string       `json:"descricao"`
	Price       float64       `json:"preco"`
	TaxType     string        `json:"tipoTributacao"`
	TaxRate     float64       `json:"aliquotaImposto"`
	Category    *categoryJSON `json:"categoria"`
	CreatedAt   *time.Time    `json:"criadoEm"`
	UpdatedAt   *time.Time    `json:"atualizadoEm"`
}

type validationJSON struct {
	Status int `json:"status"`
	Errors []struct {
		FieldName string `json:"fieldName"`
		Message   string `json:"message"`
	} `json:"errors"`
}

func newTestServer(t *testing.T, health HealthCheck) *httptest.Server {
	t.Helper()

	categories := memory.NewCategoryRepo()
	_, err := categories.Create(context.Background(), domain.NewCategory("Frutas", time.Now()))
	require.NoError(t, err)

	clk := clock.NewRealClock()
	validator := usecase.NewRequestValidator(categories)
	log := logger.NewNopLogger()

	productUC := usecase.NewProductUC(memory.NewProductRepo(), memory.NewOutboxRepo(), memory.NewTxManager(),
		nil, validator, clk, log)
	categoryUC := usecase.NewCategoryUC(categories, validator, clk)

	r := chi.NewRouter()
	NewRouter(r, testCfg, log).Init(productUC, categoryUC, health)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func productBody(description string, taxType string, rate float64, categoryID int64) map[string]any {
	return map[string]any{
		"descricao":       description,
		"preco":           4.5,
		"tipoTributacao":  taxType,
		"aliquotaImposto": rate,
		"categoriaId":     categoryID,
	}
}

func createProduct(t *testing.T, srv *httptest.Server, description string) productJSON {
	t.Helper()

	resp := doJSON(t, http.MethodPost, srv.URL+"/produtos", productBody(description, "TRIBUTAVEL", 10, 1))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[productJSON](t, resp)
}

func TestCreateProduct(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("taxable with positive rate", func(t *testing.T) {
		p := createProduct(t, srv, "Laranja")
		assert.Greater(t, p.ID, int64(0))
		require.NotNil(t, p.Description)
		assert.Equal(t, "Laranja", *p.Description)
		assert.Equal(t, 4.5, p.Price)
		assert.Equal(t, 10.0, p.TaxRate)
		require.NotNil(t, p.Category)
		assert.Equal(t, "Frutas", p.Category.Name)
		assert.NotNil(t, p.CreatedAt)
		assert.Nil(t, p.UpdatedAt)
	})

	t.Run("exempt with zero rate", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/produtos", productBody("Banana", "ISENTO", 0, 1))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("exempt with positive rate", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/produtos", productBody("Banana", "ISENTO", 10, 1))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[validationJSON](t, resp)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "aliquotaImposto", body.Errors[0].FieldName)
		assert.Equal(t, "Aliquota imposto invalida", body.Errors[0].Message)
	})

	t.Run("taxable rate below column precision", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/produtos", productBody("Banana", "TRIBUTAVEL", 0.001, 1))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[validationJSON](t, resp)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "aliquotaImposto", body.Errors[0].FieldName)
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		body := productBody("Banana", "ISENTO", 0, 1)
		body["id"] = 777
		body["criadoEm"] = "2020-01-01T00:00:00Z"

		resp := doJSON(t, http.MethodPost, srv.URL+"/produtos", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotEqual(t, int64(777), decode[productJSON](t, resp).ID)
	})

	t.Run("unknown category", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/produtos", productBody("Banana", "TRIBUTAVEL", 10, 2))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[validationJSON](t, resp)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "categoriaId", body.Errors[0].FieldName)
		assert.Equal(t, "não existe", body.Errors[0].Message)
	})

	t.Run("blank description and negative price", func(t *testing.T) {
		body := productBody(" ", "TRIBUTAVEL", 10, 1)
		body["preco"] = -1

		resp := doJSON(t, http.MethodPost, srv.URL+"/produtos", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		fields := map[string]bool{}
		for _, fe := range decode[validationJSON](t, resp).Errors {
			fields[fe.FieldName] = true
		}
		assert.Equal(t, map[string]bool{"descricao": true, "preco": true}, fields)
	})

	t.Run("malformed body", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/produtos", bytes.NewBufferString("{"))
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetProduct(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createProduct(t, srv, "Laranja")

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("%s/produtos/%d", srv.URL, created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[productJSON](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, *created.Description, *got.Description)

	t.Run("not found", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, srv.URL+"/produtos/10", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decode[StandardError](t, resp)
		assert.Equal(t, "Not found", body.Error)
		assert.Equal(t, http.StatusNotFound, body.Status)
		assert.Equal(t, "/produtos/10", body.Path)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp := doJSON(t, http.MethodGet, srv.URL+"/produtos/abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFindProducts(t *testing.T) {
	srv := newTestServer(t, nil)
	createProduct(t, srv, "Laranja")
	createProduct(t, srv, "Kiwi")

	resp := doJSON(t, http.MethodGet, srv.URL+"/produtos/find/a", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[[]productJSON](t, resp)
	require.Len(t, found, 1)
	assert.Equal(t, "Laranja", *found[0].Description)

	resp = doJSON(t, http.MethodGet, srv.URL+"/produtos/find/zzz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]productJSON](t, resp))
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t, nil)
	for _, d := range []string{"Laranja", "Kiwi", "Uva"} {
		createProduct(t, srv, d)
	}

	resp := doJSON(t, http.MethodGet, srv.URL+"/produtos?size=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	page := decode[PageResponse[productJSON]](t, resp)
	require.NotEmpty(t, page.Content)
	require.NotNil(t, page.Content[0].Description)
	assert.True(t, page.First)
	assert.False(t, page.Last)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.NumberOfElements)

	resp = doJSON(t, http.MethodGet, srv.URL+"/produtos?page=1&size=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page = decode[PageResponse[productJSON]](t, resp)
	assert.Len(t, page.Content, 1)
	assert.True(t, page.Last)

	badParams := []struct {
		name  string
		query string
	}{
		{"negative page", "page=-1"},
		{"non numeric page", "page=abc"},
		{"zero size", "size=0"},
		{"offset overflows int", "page=9223372036854775807&size=2"},
		{"large page with max size", "page=92233720368547759&size=100"},
	}
	for _, tt := range badParams {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodGet, srv.URL+"/produtos?"+tt.query, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createProduct(t, srv, "Laranja")

	body := productBody("Laranja Pera", "ISENTO", 0, 1)
	body["preco"] = 7.25

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/produtos/%d", srv.URL, created.ID), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decode[productJSON](t, resp)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Laranja Pera", *updated.Description)
	assert.Equal(t, 7.25, updated.Price)
	assert.Equal(t, "ISENTO", updated.TaxType)
	assert.Equal(t, 0.0, updated.TaxRate)
	assert.NotNil(t, updated.UpdatedAt)

	t.Run("missing product", func(t *testing.T) {
		resp := doJSON(t, http.MethodPut, srv.URL+"/produtos/999", productBody("X", "ISENTO", 0, 1))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid tax rate", func(t *testing.T) {
		resp := doJSON(t, http.MethodPut, fmt.Sprintf("%s/produtos/%d", srv.URL, created.ID),
			productBody("Laranja", "TRIBUTAVEL", 0, 1))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteProduct(t *testing.T) {
	srv := newTestServer(t, nil)
	created := createProduct(t, srv, "Laranja")

	url := fmt.Sprintf("%s/produtos/%d", srv.URL, created.ID)
	resp := doJSON(t, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())

	resp = doJSON(t, http.MethodGet, url, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategories(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/categorias", map[string]any{"nome": "Legumes"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[CategoryResponse](t, resp)
	assert.Equal(t, int64(2), created.ID)

	resp = doJSON(t, http.MethodPost, srv.URL+"/categorias", map[string]any{"nome": "Legumes"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/categorias/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Legumes", decode[CategoryResponse](t, resp).Name)

	resp = doJSON(t, http.MethodGet, srv.URL+"/categorias", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]CategoryResponse](t, resp), 2)

	// продукт можно создать в новой категории
	resp = doJSON(t, http.MethodPost, srv.URL+"/produtos", productBody("Cenoura", "ISENTO", 0, 2))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	resp := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	down := newTestServer(t, func(ctx context.Context) error { return errors.New("db is down") })
	resp = doJSON(t, http.MethodGet, down.URL+"/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
