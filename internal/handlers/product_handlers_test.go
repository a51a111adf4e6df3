package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Joaobosco1993/sales-api/internal/models"
	"github.com/Joaobosco1993/sales-api/internal/mykafka"
)

func newProductHandler(t *testing.T) (*ProductHandler, *echo.Echo) {
	db := InitTestDB(t)
	return &ProductHandler{
		DB:        db,
		Producer:  &mykafka.Producer{},
		JWTSecret: testJWTSecret,
	}, echo.New()
}

func TestCreateAndGetProduct(t *testing.T) {
	h, e := newProductHandler(t)

	c, rec := doJSONRequest(t, e, http.MethodPost, "/admin/products", map[string]any{
		"name":        "Keyboard",
		"description": "mechanical",
		"price":       49.90,
		"count":       10,
	})
	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "Keyboard", created.Name)

	c, rec = doJSONRequest(t, e, http.MethodGet, "/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(created.ID))
	require.NoError(t, h.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.ID, got.ID)
	require.InDelta(t, 49.90, got.Price, 1e-9)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	h, e := newProductHandler(t)

	c, _ := doJSONRequest(t, e, http.MethodPost, "/admin/products", map[string]any{
		"name":  "Broken",
		"price": -1.0,
	})
	err := h.CreateProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetProductsPagination(t *testing.T) {
	h, e := newProductHandler(t)

	for i := 0; i < 15; i++ {
		require.NoError(t, h.DB.Create(&models.Product{
			Name:        fmt.Sprintf("p%02d", i),
			Description: "d",
			Price:       1,
		}).Error)
	}

	c, rec := doJSONRequest(t, e, http.MethodGet, "/products?page=2&size=10", nil)
	require.NoError(t, h.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product `json:"data"`
		Meta struct {
			Total    int64 `json:"total"`
			HasNext  bool  `json:"has_next"`
			HasPrev  bool  `json:"has_prev"`
			PageSize int   `json:"size"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)
	require.Equal(t, int64(15), resp.Meta.Total)
	require.True(t, resp.Meta.HasPrev)
	require.False(t, resp.Meta.HasNext)
}

func TestPatchProductAppliesOnlyPresentFields(t *testing.T) {
	h, e := newProductHandler(t)

	prod := models.Product{Name: "Mouse", Description: "wired", Price: 15, Count: 3}
	require.NoError(t, h.DB.Create(&prod).Error)

	c, rec := doJSONRequest(t, e, http.MethodPatch, "/admin/products/1", map[string]any{
		"price": 12.5,
	})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(prod.ID))
	require.NoError(t, h.PatchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, h.DB.First(&got, prod.ID).Error)
	require.InDelta(t, 12.5, got.Price, 1e-9)
	require.Equal(t, "Mouse", got.Name)
	require.Equal(t, "wired", got.Description)
	require.Equal(t, uint(3), got.Count)
}

func TestPatchProductValidatesFields(t *testing.T) {
	h, e := newProductHandler(t)

	prod := models.Product{Name: "Mouse", Description: "wired", Price: 15}
	require.NoError(t, h.DB.Create(&prod).Error)

	c, _ := doJSONRequest(t, e, http.MethodPatch, "/admin/products/1", map[string]any{
		"price": -2.0,
	})
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(prod.ID))
	err := h.PatchProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)

	c, _ = doJSONRequest(t, e, http.MethodPatch, "/admin/products/1", map[string]any{"name": "x"})
	c.SetParamNames("id")
	c.SetParamValues("9999")
	err = h.PatchProduct(c)
	he, ok = err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestDeleteProduct(t *testing.T) {
	h, e := newProductHandler(t)

	prod := models.Product{Name: "Mouse", Description: "wired", Price: 15}
	require.NoError(t, h.DB.Create(&prod).Error)

	c, rec := doJSONRequest(t, e, http.MethodDelete, "/admin/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(prod.ID))
	require.NoError(t, h.DeleteProduct(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, _ = doJSONRequest(t, e, http.MethodDelete, "/admin/products/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(prod.ID))
	err := h.DeleteProduct(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestCategories(t *testing.T) {
	db := InitTestDB(t)
	h := &CategoryHandler{DB: db}
	e := echo.New()

	c, rec := doJSONRequest(t, e, http.MethodPost, "/admin/categories", map[string]string{"name": "peripherals"})
	require.NoError(t, h.CreateCategory(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = doJSONRequest(t, e, http.MethodGet, "/categories", nil)
	require.NoError(t, h.GetCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	require.Len(t, cats, 1)
	require.Equal(t, "peripherals", cats[0].Name)
}
