package bind_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/bind"
)

type loginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestJSONCleanInput(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"k@example.com","password":"pw"}`))

	var in loginInput
	errs, err := bind.JSON(req, &in)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, "k@example.com", in.Email)
}

func TestJSONValidationErrors(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"k@example.com"}`))

	var in loginInput
	errs, err := bind.JSON(req, &in)
	require.NoError(t, err)
	assert.Contains(t, errs, "password")
}

func TestJSONEmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))

	var in loginInput
	_, err := bind.JSON(req, &in)
	assert.ErrorIs(t, err, bind.ErrEmptyBody)
}

func TestJSONMalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))

	var in loginInput
	_, err := bind.JSON(req, &in)
	require.Error(t, err)
	assert.NotErrorIs(t, err, bind.ErrEmptyBody)
}

func TestJSONBodyLimit(t *testing.T) {
	config.Set("MAX_BODY_BYTES", "16")
	t.Cleanup(func() { config.Set("MAX_BODY_BYTES", "") })

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"way-over-the-sixteen-byte-line@example.com"}`))

	var in loginInput
	_, err := bind.JSON(req, &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}
