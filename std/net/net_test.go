package net

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png bytes"))
	}))
	defer srv.Close()

	body, contentType, err := Fetch(srv.URL + "/a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "png bytes" || contentType != "image/png" {
		t.Errorf("got (%q, %q)", body, contentType)
	}

	_, _, err = Fetch(srv.URL + "/missing.png")
	if !errors.Is(err, ErrStatus) {
		t.Errorf("expected ErrStatus, got %v", err)
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://example.com/css/site.css", "../img/a.png", "https://example.com/img/a.png"},
		{"https://example.com/", "https://cdn.example.com/b.png", "https://cdn.example.com/b.png"},
		{"", "img/a.png", "img/a.png"},
		{"file:///srv/www/index.html", "bg.png", "file:///srv/www/bg.png"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

func TestURLKinds(t *testing.T) {
	if !IsNetworkURL("HTTPS://example.com") || IsNetworkURL("file:///a.png") {
		t.Error("IsNetworkURL misclassified")
	}
	if !IsFileURL("file:///a.png") || IsFileURL("a.png") {
		t.Error("IsFileURL misclassified")
	}
}
