package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/jain881/AIFolio/api/http"
	"github.com/jain881/AIFolio/api/http/handlers"
	"github.com/jain881/AIFolio/pkg/cv"
	"github.com/jain881/AIFolio/pkg/health"
	"github.com/jain881/AIFolio/pkg/health/checkers"
	"github.com/jain881/AIFolio/pkg/portfolio"
	"github.com/jain881/AIFolio/pkg/store/sqlite"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Complete(context.Context, string) (string, error) {
	return f.reply, f.err
}

const testPage = `<!DOCTYPE html>
<html><head><!-- portfolio:data --></head><body>entry</body></html>`

func newTestApp(t *testing.T, model *fakeLLM) (*fiber.App, *portfolio.Publisher, *portfolio.Tracker) {
	t.Helper()
	root := t.TempDir()

	templateDir := filepath.Join(root, "template")
	require.NoError(t, os.MkdirAll(filepath.Join(templateDir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "index.html"), []byte(testPage), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "assets", "app.js"), []byte("// js"), 0o644))

	kv, err := sqlite.Open(filepath.Join(root, "kv.db"))
	require.NoError(t, err)
	t.Cleanup(kv.Close)

	svc := cv.NewService(model, 20, 12000)
	artifacts := portfolio.NewArtifacts(templateDir, filepath.Join(root, "portfolios"))
	publisher := portfolio.NewPublisher(kv, artifacts, "http://localhost:8080")
	tracker := portfolio.NewTracker(kv)
	readiness := health.NewService(checkers.NewStoreChecker(kv))

	app := fiber.New()
	apihttp.Register(app,
		handlers.NewHealthHandler(readiness),
		handlers.NewCVHandler(svc, "test-model", filepath.Join(root, "uploads")),
		handlers.NewPortfolioHandler(publisher, tracker),
		handlers.NewArtifactHandler(publisher, tracker),
	)
	return app, publisher, tracker
}

func multipartUpload(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cv/extract", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

const sampleCV = `John Smith
Senior Backend Engineer at Acme Corp since 2018.
Skilled in Go, PostgreSQL and Kubernetes. john.smith@example.com`

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestExtractEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{
		reply: "```json\n{\"name\":\"John Smith\",\"contact\":{\"email\":\"john.smith@example.com\"}}\n```",
	})

	resp, err := app.Test(multipartUpload(t, "resume.txt", sampleCV), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "test-model", body["model"])
	assert.Equal(t, "resume.txt", body["filename"])
	rec, ok := body["cv"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "John Smith", rec["name"])
	skills, ok := rec["skills"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, skills, len(cv.SkillCategories))
}

func TestExtractEndpointNoFile(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cv/extract", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractEndpointTooShort(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{})

	resp, err := app.Test(multipartUpload(t, "resume.txt", "hi"), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractEndpointRecoveryFailureCarriesRaw(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{reply: "sorry, no JSON today"})

	resp, err := app.Test(multipartUpload(t, "resume.txt", sampleCV), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "sorry, no JSON today", body["raw"])
}

func TestExtractEndpointGatewayFailure(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{err: errors.New("upstream down")})

	resp, err := app.Test(multipartUpload(t, "resume.txt", sampleCV), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func publishBody(email string) *bytes.Reader {
	payload, _ := json.Marshal(map[string]any{
		"cv": map[string]any{
			"name":    "Jane",
			"contact": map[string]any{"email": email},
		},
		"theme": "dark",
	})
	return bytes.NewReader(payload)
}

func publishReq(email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/publish", publishBody(email))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPublishEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{})

	resp, err := app.Test(publishReq("jane@example.com"), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decodeBody(t, resp)
	assert.Equal(t, false, first["isExisting"])

	resp, err = app.Test(publishReq("Jane@Example.com "), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeBody(t, resp)
	assert.Equal(t, true, second["isExisting"])
	assert.Equal(t, first["id"], second["id"])
	assert.Equal(t, first["url"], second["url"])
}

func TestPublishEndpointMissingIdentity(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{})

	resp, err := app.Test(publishReq(""), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServeAndViewTracking(t *testing.T) {
	app, publisher, tracker := newTestApp(t, &fakeLLM{})
	ctx := context.Background()

	res, err := publisher.Publish(ctx, cv.Normalize(map[string]any{
		"contact": map[string]any{"email": "jane@example.com"},
	}), "default")
	require.NoError(t, err)

	// root hit serves the entry page and counts one view
	req := httptest.NewRequest(http.MethodGet, "/p/"+res.ID, nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(page), "window.__PORTFOLIO_DATA__")

	// soft route (no extension) falls back to the entry page, also counted
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/p/"+res.ID+"/about", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// asset hit is served but not counted
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/p/"+res.ID+"/assets/app.js", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	views, err := tracker.Views(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views.TotalViews)
	require.Len(t, views.ViewHistory, 2)
	// forwarded header wins over the connection address, first hop only
	assert.Equal(t, "203.0.113.7", views.ViewHistory[0].SourceAddress)
}

func TestServeUnknownArtifact(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/p/deadbeef00000000", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeRejectsTraversal(t *testing.T) {
	app, publisher, _ := newTestApp(t, &fakeLLM{})

	res, err := publisher.Publish(context.Background(), cv.Normalize(map[string]any{
		"contact": map[string]any{"email": "jane@example.com"},
	}), "default")
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/p/"+res.ID+"/../../etc/passwd", nil), 5000)
	require.NoError(t, err)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

func TestViewsEndpoint(t *testing.T) {
	app, publisher, tracker := newTestApp(t, &fakeLLM{})
	ctx := context.Background()

	res, err := publisher.Publish(ctx, cv.Normalize(map[string]any{
		"contact": map[string]any{"email": "jane@example.com"},
	}), "default")
	require.NoError(t, err)

	// never viewed yet: empty counters, not a 404
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/"+res.ID+"/views", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["totalViews"])

	require.NoError(t, tracker.RecordView(ctx, res.ID, "10.0.0.9"))
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/"+res.ID+"/views", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(1), body["totalViews"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/ffffffffffffffff/views", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeLLM{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/ready", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExtractTempCleanup(t *testing.T) {
	root := t.TempDir()
	uploads := filepath.Join(root, "uploads")

	svc := cv.NewService(&fakeLLM{reply: "not json"}, 20, 12000)
	app := fiber.New()
	h := handlers.NewCVHandler(svc, "m", uploads)
	app.Post("/api/v1/cv/extract", h.Extract)

	resp, err := app.Test(multipartUpload(t, "resume.txt", sampleCV), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	entries, err := os.ReadDir(uploads)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Empty(t, names, "temp upload should be removed, found: %s", strings.Join(names, ", "))
}
