package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchCollectsCSSInPriorityOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
<title>Acme</title>
<style>body { color: #111111; }</style>
<link rel="stylesheet" href="/a.css">
<link rel="stylesheet" href="/b.css">
</head>
<body><div style="color: #222222">hi</div></body>
</html>`))
	})
	mux.HandleFunc("/a.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte(`.a { color: #333333; }`))
	})
	mux.HandleFunc("/b.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		w.Write([]byte(`.b { color: #444444; }`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	page, err := Fetch(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	// Style blocks before inline styles before linked stylesheets.
	order := []string{"#111111", "#222222", "#333333", "#444444"}
	last := -1
	for _, hex := range order {
		idx := strings.Index(page.CSS, hex)
		if idx < 0 {
			t.Fatalf("CSS missing %s:\n%s", hex, page.CSS)
		}
		if idx < last {
			t.Errorf("CSS source %s out of priority order", hex)
		}
		last = idx
	}
}

func TestFetchCapsLinkedStylesheets(t *testing.T) {
	var fetched int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte(`<html><head>
<link rel="stylesheet" href="/1.css">
<link rel="stylesheet" href="/2.css">
<link rel="stylesheet" href="/3.css">
<link rel="stylesheet" href="/4.css">
</head><body></body></html>`))
			return
		}
		fetched++
		w.Write([]byte(`.x { color: #123456; }`))
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, Options{}); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if fetched != 3 {
		t.Errorf("fetched %d stylesheets, want 3", fetched)
	}
}

func TestFetchSkipsFailedStylesheets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Write([]byte(`<html><head>
<link rel="stylesheet" href="/missing.css">
<link rel="stylesheet" href="/ok.css">
</head><body></body></html>`))
		case "/ok.css":
			w.Write([]byte(`.ok { color: #abcdef; }`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	page, err := Fetch(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(page.CSS, "#abcdef") {
		t.Error("surviving stylesheet not collected")
	}
}

func TestFetchMetaAndHeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
<title>Acme Corp - Widgets</title>
<meta property="og:site_name" content="Acme Corp">
<meta property="og:description" content="Widgets for everyone">
<meta name="theme-color" content="#336699">
</head><body style="font-family: Inter"><h1>Best Widgets</h1></body></html>`))
	}))
	defer server.Close()

	page, err := Fetch(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if page.Title != "Acme Corp - Widgets" {
		t.Errorf("Title = %q", page.Title)
	}
	if page.Meta["og:site_name"] != "Acme Corp" {
		t.Errorf("og:site_name = %q", page.Meta["og:site_name"])
	}
	if page.ThemeColor != "#336699" {
		t.Errorf("ThemeColor = %q", page.ThemeColor)
	}
	if page.H1 != "Best Widgets" {
		t.Errorf("H1 = %q", page.H1)
	}
	if page.BodyStyle != "font-family: Inter" {
		t.Errorf("BodyStyle = %q", page.BodyStyle)
	}
}

func TestFetchStripsWWW(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html></html>`))
	}))
	defer server.Close()

	page, err := Fetch(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if strings.HasPrefix(page.Domain, "www.") {
		t.Errorf("Domain %q not stripped", page.Domain)
	}
}

func TestFetchErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, Options{}); err == nil {
		t.Error("expected error for HTTP 500")
	}
}
