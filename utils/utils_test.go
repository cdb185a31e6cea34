package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KidawR/MainProgect/errs"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	return c, w
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(errs.Validationf("op", "bad")))
	assert.Equal(t, http.StatusNotFound, StatusFor(errs.NotFoundf("op", "missing")))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errs.Wrap(errs.Store, "op", errors.New("db down"))))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("plain")))
}

func TestRespondRepoErrorHidesStoreDetail(t *testing.T) {
	InitLogger()
	c, w := newContext(http.MethodGet, "/", "")

	RespondRepoError(c, errs.Wrap(errs.Store, "repository.GetOrders", errors.New("password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
	assert.NotContains(t, resp.Message, "password")
}

func TestParseID(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "order_id", Value: "17"}}

	id, err := ParseID(c, "order_id")
	require.NoError(t, err)
	assert.Equal(t, uint(17), id)

	c.Params = gin.Params{{Key: "order_id", Value: "abc"}}
	_, err = ParseID(c, "order_id")
	assert.Error(t, err)

	c.Params = gin.Params{{Key: "order_id", Value: "0"}}
	_, err = ParseID(c, "order_id")
	assert.Error(t, err)
}

func TestOptionalUintQuery(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/?branch_id=2", "")
	v, err := OptionalUintQuery(c, "branch_id")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, uint(2), *v)

	c, _ = newContext(http.MethodGet, "/", "")
	v, err = OptionalUintQuery(c, "branch_id")
	require.NoError(t, err)
	assert.Nil(t, v)

	c, _ = newContext(http.MethodGet, "/?branch_id=-1", "")
	_, err = OptionalUintQuery(c, "branch_id")
	assert.Error(t, err)
}

func TestDecodeStrict(t *testing.T) {
	var dst struct {
		Name *string `json:"name"`
	}

	c, _ := newContext(http.MethodPatch, "/", `{"name":"Латте"}`)
	require.NoError(t, DecodeStrict(c, &dst))
	assert.Equal(t, "Латте", *dst.Name)

	c, _ = newContext(http.MethodPatch, "/", `{"name":"x","customer_id":5}`)
	assert.Error(t, DecodeStrict(c, &dst))

	c, _ = newContext(http.MethodPatch, "/", ``)
	assert.EqualError(t, DecodeStrict(c, &dst), "request body is empty")
}
