package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logoRequest(t *testing.T, id uuid.UUID, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("logo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/company/logo/"+id.String(), body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadLogo(t *testing.T) {
	env := newTestEnv(t, nil)
	data := seedBasic(t, env.store)
	png := []byte("\x89PNG\r\n\x1a\nlogo")

	t.Run("Upload png", func(t *testing.T) {
		c, rec := env.newContext(logoRequest(t, data.company.ID, "logo.png", png), requestOptions{params: []string{"id", data.company.ID.String()}, htmx: true})

		require.NoError(t, env.handler.UploadLogo(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
		assert.Contains(t, rec.Body.String(), "Logo uploaded")

		company, err := env.store.Companies.SelectCompany(context.Background(), data.company.ID)
		require.NoError(t, err)
		assert.Equal(t, "/files/logos/"+data.company.ID.String()+".png", company.LogoURL)

		files, err := env.filesystem.ListFiles(context.Background())
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("Text files are rejected", func(t *testing.T) {
		c, rec := env.newContext(logoRequest(t, data.company.ID, "notes.txt", []byte("hi")), requestOptions{params: []string{"id", data.company.ID.String()}})

		require.NoError(t, env.handler.UploadLogo(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Logo must be an image")
	})

	t.Run("Unknown company", func(t *testing.T) {
		id := uuid.New()
		c, rec := env.newContext(logoRequest(t, id, "logo.png", png), requestOptions{params: []string{"id", id.String()}})

		require.NoError(t, env.handler.UploadLogo(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		c, rec := env.newContext(logoRequest(t, data.company.ID, "logo.png", png), requestOptions{params: []string{"id", "nope"}})

		require.NoError(t, env.handler.UploadLogo(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServeFile(t *testing.T) {
	env := newTestEnv(t, nil)
	content := "\x89PNG\r\n\x1a\nlogo"
	require.NoError(t, env.filesystem.Write(context.Background(), "logos/acme.png", strings.NewReader(content), int64(len(content))))

	t.Run("Existing file", func(t *testing.T) {
		c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/files/logos/acme.png", nil), requestOptions{params: []string{"*", "logos/acme.png"}})

		require.NoError(t, env.handler.ServeFile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, content, rec.Body.String())
	})

	t.Run("Missing file", func(t *testing.T) {
		c, _ := env.newContext(httptest.NewRequest(http.MethodGet, "/files/logos/none.png", nil), requestOptions{params: []string{"*", "logos/none.png"}})

		err := env.handler.ServeFile(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("Path traversal", func(t *testing.T) {
		c, _ := env.newContext(httptest.NewRequest(http.MethodGet, "/files/x", nil), requestOptions{params: []string{"*", "../secret"}})

		err := env.handler.ServeFile(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestGetFiles(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.filesystem.Write(context.Background(), "logos/a.png", strings.NewReader("a"), 1))

	c, rec := env.newContext(httptest.NewRequest(http.MethodGet, "/api/files", nil), requestOptions{})
	require.NoError(t, env.handler.GetFiles(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logos/a.png")
}
