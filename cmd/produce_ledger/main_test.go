package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/produce_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerRoutesServeDocOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{IsProduction: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		BasePath string                    `json:"basePath"`
		Info     struct{ Title string }    `json:"info"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Equal(t, "Produce Ledger API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/sales")
	assert.Contains(t, doc.Paths["/payments/charges"], "post")
}

func TestSwaggerRoutesHiddenInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupSwaggerRoutes(r, &config.Config{IsProduction: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
