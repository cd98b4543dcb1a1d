package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type echoResponse struct {
	Message string `json:"message"`
}

func TestDoPostSync(t *testing.T) {
	var gotContentType, gotAuth, gotCustom string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotCustom = r.Header.Get("x-custom")
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer server.Close()

	httpResp, parsed, err := DoPostSync[echoResponse](
		context.Background(),
		server.Client(),
		server.URL,
		"secret",
		map[string]string{"hello": "world"},
		HeaderOption{Key: "x-custom", Value: "custom-value"},
	)
	if err != nil {
		t.Fatalf("DoPostSync() error = %v", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", httpResp.StatusCode)
	}
	if parsed == nil || parsed.Message != "ok" {
		t.Errorf("parsed = %+v", parsed)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotCustom != "custom-value" {
		t.Errorf("x-custom = %q", gotCustom)
	}
}

func TestDoPostSync_EmptyAPIKeySkipsBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, _, err := DoPostSync[echoResponse](context.Background(), server.Client(), server.URL, "", nil)
	if err != nil {
		t.Fatalf("DoPostSync() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want unset", gotAuth)
	}
}

func TestDoPostSync_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	httpResp, parsed, err := DoPostSync[echoResponse](context.Background(), server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if parsed != nil {
		t.Errorf("parsed = %+v, want nil", parsed)
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "upstream down") {
		t.Errorf("err = %v, want status and body in message", err)
	}
	if httpResp == nil || httpResp.StatusCode != http.StatusServiceUnavailable {
		t.Error("http response must be returned alongside the error")
	}
}

func TestDoPostSync_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	_, _, err := DoPostSync[echoResponse](context.Background(), server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected unmarshal error")
	}
	if !strings.Contains(err.Error(), "this is not json") {
		t.Errorf("err = %v, want response preview in message", err)
	}
}

func TestDoPostSync_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := DoPostSync[echoResponse](ctx, server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected context deadline error")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("cancellation was not respected promptly")
	}
}

func TestDoPostSync_NilClientUsesDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer server.Close()

	_, parsed, err := DoPostSync[echoResponse](context.Background(), nil, server.URL, "", nil)
	if err != nil {
		t.Fatalf("DoPostSync() error = %v", err)
	}
	if parsed.Message != "ok" {
		t.Errorf("parsed = %+v", parsed)
	}
}
