package controllers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"

	"xtinypng/internal/domain/entities"
	"xtinypng/internal/infrastructure/config"
	"xtinypng/internal/infrastructure/logging"
	"xtinypng/internal/infrastructure/repositories"
	"xtinypng/internal/infrastructure/tinify"
	"xtinypng/internal/mock/mock_repositories"
	usecases "xtinypng/internal/usecase"
)

const testKey = entities.Credential("0123456789abcdef0123456789abcdef")

// fakeService отвечает на /shrink по размеру тела и отдает /output/{id}
type fakeService struct {
	server  *httptest.Server
	calls   int32
	status  int
	payload []byte
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()
	s := &fakeService{status: http.StatusCreated}

	r := mux.NewRouter()
	r.HandleFunc("/shrink", func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&s.calls, 1)
		data, _ := io.ReadAll(req.Body)
		w.Header().Set("Compression-Count", "12")
		w.WriteHeader(s.status)
		if s.status != http.StatusCreated {
			io.WriteString(w, `{"error":"TooManyRequests","message":"Your monthly limit has been exceeded"}`)
			return
		}
		io.WriteString(w, `{"input":{"size":`+strconv.Itoa(len(data))+`},"output":{"size":`+strconv.Itoa(len(s.payload))+`,"url":"`+s.server.URL+`/output/y"}}`)
	}).Methods(http.MethodPost)
	r.HandleFunc("/output/{id}", func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&s.calls, 1)
		w.Write(s.payload)
	}).Methods(http.MethodGet)

	s.server = httptest.NewServer(r)
	t.Cleanup(s.server.Close)
	return s
}

func newController(t *testing.T, svc *fakeService, resolver *mock_repositories.MockCredentialResolver, out io.Writer) *CLIController {
	t.Helper()
	cfg := config.NewRepository().Default()
	cfg.API.Endpoint = svc.server.URL + "/shrink"
	cfg.API.TimeoutSeconds = 5

	logger := logging.NewConsoleLogger(out, "debug")
	fileRepo := repositories.NewFileSystemRepository()
	compressor := usecases.NewCompressImageUseCase(tinify.NewClient(cfg.API), fileRepo, cfg.Telemetry)
	batch := usecases.NewProcessBatchUseCase(compressor, fileRepo, logger)

	return NewCLIController(resolver, batch, cfg, logger, out, "1.0.0-test")
}

func resolved(key entities.Credential) *entities.CredentialResolution {
	return &entities.CredentialResolution{Credential: key, Source: entities.SourceFlag, Origin: "--key"}
}

func TestCLIController_RejectsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "fit without height", args: []string{"--method", "fit", "--width", "100"}},
		{name: "cover with one dimension", args: []string{"-m", "cover", "-H", "10"}},
		{name: "scale with both dimensions", args: []string{"-m", "scale", "-W", "10", "-H", "10"}},
		{name: "invalid width", args: []string{"-W", "abc"}},
		{name: "negative height", args: []string{"-H", "-5"}},
		{name: "unknown method", args: []string{"-m", "stretch", "-W", "10"}},
		{name: "method without dimensions", args: []string{"-m", "thumb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "a.png"), make([]byte, 10), 0644); err != nil {
				t.Fatal(err)
			}

			svc := newFakeService(t)
			resolver := mock_repositories.NewMockCredentialResolver(ctrl)
			resolver.EXPECT().Resolve(gomock.Any()).Times(0)

			opts, err := ParseOptions(append(tt.args, dir))
			if err != nil {
				t.Fatalf("ParseOptions: %v", err)
			}

			var out bytes.Buffer
			code := newController(t, svc, resolver, &out).Execute(context.Background(), opts)
			if code != ExitUsage {
				t.Errorf("expected exit %d, got %d", ExitUsage, code)
			}
			if calls := atomic.LoadInt32(&svc.calls); calls != 0 {
				t.Errorf("expected no network calls, got %d", calls)
			}
		})
	}
}

func TestCLIController_CredentialErrors(t *testing.T) {
	tests := []struct {
		name       string
		resolution *entities.CredentialResolution
		err        error
		strict     bool
	}{
		{name: "no credential", err: entities.ErrNoCredential},
		{name: "short key in strict mode", resolution: resolved("short"), strict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newFakeService(t)
			resolver := mock_repositories.NewMockCredentialResolver(ctrl)
			resolver.EXPECT().Resolve("").Return(tt.resolution, tt.err)

			var out bytes.Buffer
			c := newController(t, svc, resolver, &out)
			c.config.Credentials.StrictKeyLength = tt.strict

			opts, _ := ParseOptions([]string{t.TempDir()})
			if code := c.Execute(context.Background(), opts); code != ExitCredential {
				t.Errorf("expected exit %d, got %d", ExitCredential, code)
			}
			if calls := atomic.LoadInt32(&svc.calls); calls != 0 {
				t.Errorf("expected no network calls, got %d", calls)
			}
		})
	}
}

func TestCLIController_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	if err := os.WriteFile(path, bytes.Repeat([]byte{1}, 5000), 0644); err != nil {
		t.Fatal(err)
	}

	svc := newFakeService(t)
	svc.payload = bytes.Repeat([]byte{2}, 3000)

	resolver := mock_repositories.NewMockCredentialResolver(ctrl)
	resolver.EXPECT().Resolve(string(testKey)).Return(resolved(testKey), nil)

	opts, err := ParseOptions([]string{dir, "-k", string(testKey)})
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}

	var out bytes.Buffer
	if code := newController(t, svc, resolver, &out).Execute(context.Background(), opts); code != ExitOK {
		t.Fatalf("expected exit 0, got %d\n%s", code, out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, svc.payload) {
		t.Errorf("file must hold the fetched bytes, got %d bytes", len(data))
	}

	log := out.String()
	if !strings.Contains(log, "Shrunk 2.0 kB (40%)") {
		t.Errorf("expected Shrunk status line, got:\n%s", log)
	}
	if strings.Contains(log, string(testKey)) {
		t.Error("full key must never be printed")
	}
	if !strings.Contains(log, "Compression-Count -> 12") {
		t.Errorf("expected usage line, got:\n%s", log)
	}
}

func TestCLIController_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), make([]byte, 100), 0644); err != nil {
		t.Fatal(err)
	}

	svc := newFakeService(t)
	svc.status = http.StatusTooManyRequests

	resolver := mock_repositories.NewMockCredentialResolver(ctrl)
	resolver.EXPECT().Resolve("").Return(resolved(testKey), nil)

	opts, _ := ParseOptions([]string{dir})
	var out bytes.Buffer
	if code := newController(t, svc, resolver, &out).Execute(context.Background(), opts); code != ExitPartialFailure {
		t.Errorf("expected exit %d, got %d", ExitPartialFailure, code)
	}
	if !strings.Contains(out.String(), "месячный лимит исчерпан") {
		t.Errorf("expected rate limit status line, got:\n%s", out.String())
	}
}

func TestCLIController_NoImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newFakeService(t)
	resolver := mock_repositories.NewMockCredentialResolver(ctrl)
	resolver.EXPECT().Resolve("").Return(resolved(testKey), nil)

	opts, _ := ParseOptions([]string{t.TempDir()})
	var out bytes.Buffer
	if code := newController(t, svc, resolver, &out).Execute(context.Background(), opts); code != ExitOK {
		t.Errorf("expected exit 0, got %d", code)
	}
	if calls := atomic.LoadInt32(&svc.calls); calls != 0 {
		t.Errorf("expected no network calls, got %d", calls)
	}
}

func TestCLIController_HelpAndVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newFakeService(t)
	resolver := mock_repositories.NewMockCredentialResolver(ctrl)

	var out bytes.Buffer
	c := newController(t, svc, resolver, &out)

	if code := c.Execute(context.Background(), &Options{Version: true}); code != ExitOK {
		t.Errorf("expected exit 0, got %d", code)
	}
	if strings.TrimSpace(out.String()) != "1.0.0-test" {
		t.Errorf("unexpected version output %q", out.String())
	}

	out.Reset()
	if code := c.Execute(context.Background(), &Options{Help: true}); code != ExitOK {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "--recursive") {
		t.Error("expected usage text")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.NewRepository().Default()
	ApplyOverrides(cfg, &Options{UserAgent: "curl/8", Workers: 16, TUI: true, StrictKey: true})

	if cfg.API.UserAgent != "curl/8" || cfg.Processing.ParallelWorkers != 16 || !cfg.Output.TUI || !cfg.Credentials.StrictKeyLength {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	cfg = config.NewRepository().Default()
	ApplyOverrides(cfg, &Options{})
	if cfg.API.UserAgent != entities.DefaultUserAgent || cfg.Processing.ParallelWorkers != 4 {
		t.Errorf("empty options must keep config values: %+v", cfg)
	}
}
