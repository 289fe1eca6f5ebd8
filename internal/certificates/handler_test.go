package certificates_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"certrisk-backend/internal/bootstrap"
	"certrisk-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	modelsDir := t.TempDir()
	artifacts := map[string]string{
		"feature_columns.json": `["liquidez", "endeudamiento"]`,
		"scaler.json":          `{"mean": [0, 0], "scale": [1, 1]}`,
		"classifier.json":      `{"classes": [0, 1, 2], "coef": [[1, 0], [0, 1], [0, 0]], "intercept": [0, 0, 0]}`,
	}
	for name, content := range artifacts {
		if err := os.WriteFile(filepath.Join(modelsDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	dataDir := t.TempDir()
	scorePath := filepath.Join(dataDir, "df_score.csv")
	scoreCSV := "expediente,liquidez,endeudamiento,score_final\n12345,5,1,0.42\n"
	if err := os.WriteFile(scorePath, []byte(scoreCSV), 0o644); err != nil {
		t.Fatalf("write score csv: %v", err)
	}
	rankingPath := filepath.Join(dataDir, "bi_ranking.csv")
	if err := os.WriteFile(rankingPath, []byte("expediente\n77777\n"), 0o644); err != nil {
		t.Fatalf("write ranking csv: %v", err)
	}

	cfg := config.Config{
		Port:               "0",
		CORSAllowOrigin:    []string{"http://localhost:5173"},
		Env:                "dev",
		ObjectStoreType:    "local",
		LocalStoreDir:      t.TempDir(),
		ModelsDir:          modelsDir,
		ScoreDatasetPath:   scorePath,
		RankingDatasetPath: rankingPath,
		AuditLogPath:       filepath.Join(dataDir, "certificados_guardados.txt"),
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func postMultipart(t *testing.T, router http.Handler, field, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/certificates", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeErrorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return payload.Error.Message
}

func TestHealth(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("health = %d; want 200", resp.Code)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/certificates", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", resp.Code)
	}
	if got := decodeErrorMessage(t, resp); got != "Sube el PDF del certificado." {
		t.Fatalf("message = %q", got)
	}
}

func TestUploadRejectsNonPDFExtension(t *testing.T) {
	app := buildTestApp(t)

	resp := postMultipart(t, app.Router, "certificado", "certificado.docx", []byte("not a pdf"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", resp.Code)
	}
	if got := decodeErrorMessage(t, resp); got != "El archivo debe ser PDF." {
		t.Fatalf("message = %q", got)
	}
}

func TestUploadRejectsUnreadablePDF(t *testing.T) {
	app := buildTestApp(t)

	resp := postMultipart(t, app.Router, "certificado", "certificado.pdf", []byte("not really a pdf"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", resp.Code)
	}
	if got := decodeErrorMessage(t, resp); got != "No se pudo leer el PDF." {
		t.Fatalf("message = %q", got)
	}
}

func TestListCertificatesEmpty(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", resp.Code)
	}
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload) != 0 {
		t.Fatalf("items = %d; want 0", len(payload))
	}
}
