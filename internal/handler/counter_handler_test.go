package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/emp-portal-api/internal/models"
	appErrors "github.com/noah-isme/emp-portal-api/pkg/errors"
)

type fakeCounterSrv struct {
	counters *models.Counters
	err      error
}

func (f *fakeCounterSrv) Counters(context.Context) (*models.Counters, error) {
	return f.counters, f.err
}

func TestCounterHandlerGet(t *testing.T) {
	h := NewCounterHandler(&fakeCounterSrv{counters: &models.Counters{RecycleCount: 4, RequestsCount: 2}})

	c, rec := testContext(t, http.MethodGet, "/counters", "")
	h.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data models.Counters `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 4, envelope.Data.RecycleCount)
	assert.Equal(t, 2, envelope.Data.RequestsCount)
}

func TestCounterHandlerFetchFailure(t *testing.T) {
	h := NewCounterHandler(&fakeCounterSrv{err: appErrors.ErrFetchFailed})

	c, rec := testContext(t, http.MethodGet, "/counters", "")
	h.Get(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
