package artifact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"astroguide/internal/gateway/repository/sqldb"
)

func TestKey(t *testing.T) {
	key, err := Key(" charts/ ", "/Ada_Lovelace_1.pdf")
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if key != "charts/Ada_Lovelace_1.pdf" {
		t.Fatalf("Key() = %q", key)
	}
	for _, tc := range []struct{ ns, path string }{
		{"", "a.pdf"},
		{"charts", ""},
		{"charts", "../secret"},
		{"charts", "a/./b"},
	} {
		if _, err := Key(tc.ns, tc.path); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("Key(%q, %q) error = %v, want ErrInvalidPath", tc.ns, tc.path, err)
		}
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType("chart.PDF"); got != "application/pdf" {
		t.Fatalf("ContentType(pdf) = %q", got)
	}
	if got := ContentType("blob"); got != "application/octet-stream" {
		t.Fatalf("ContentType(no ext) = %q", got)
	}
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "charts", "missing.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}
	if err := s.Put(ctx, "charts", "b.pdf", []byte("first")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, "charts", "b.pdf", []byte("second")); err != nil {
		t.Fatalf("Put(overwrite) error = %v", err)
	}
	if err := s.Put(ctx, "charts", "a.pdf", []byte("alpha")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, "other", "c.pdf", []byte("gamma")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "charts", "b.pdf")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("Get() = %q, want second", got)
	}

	list, err := s.List(ctx, "charts")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(list, []string{"a.pdf", "b.pdf"}) {
		t.Fatalf("List() = %v", list)
	}

	url, err := s.GetURL(ctx, "charts", "a.pdf")
	if err != nil || url != "" {
		t.Fatalf("GetURL() = %q, %v", url, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesContent(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("chart")
	if err := s.Put(context.Background(), "charts", "x.pdf", buf); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	buf[0] = 'X'
	got, _ := s.Get(context.Background(), "charts", "x.pdf")
	if string(got) != "chart" {
		t.Fatalf("stored content aliased caller buffer: %q", got)
	}
}

func TestSQLStore(t *testing.T) {
	h, err := sqldb.OpenSQLite(context.Background(), sqldb.MemoryPath)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { h.Close() })
	exerciseStore(t, NewSQLStore(h))
}

func TestNewS3StoreValidatesConfig(t *testing.T) {
	cases := []S3Config{
		{},
		{Endpoint: "localhost:9000"},
		{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"},
	}
	for _, cfg := range cases {
		if _, err := NewS3Store(cfg); err == nil {
			t.Fatalf("NewS3Store(%+v) expected error", cfg)
		}
	}
	s, err := NewS3Store(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "charts"})
	if err != nil {
		t.Fatalf("NewS3Store() error = %v", err)
	}
	if s.region != "us-east-1" || s.urlExpiry <= 0 {
		t.Fatalf("defaults not applied: region=%q expiry=%v", s.region, s.urlExpiry)
	}
}

func TestDiskStore(t *testing.T) {
	exerciseStore(t, NewDiskStore(t.TempDir()))
}

func TestDiskStoreListMissingNamespace(t *testing.T) {
	list, err := NewDiskStore(t.TempDir()).List(context.Background(), "charts")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("List() = %v, want empty", list)
	}
}

func TestS3StoreGetURLRequiresObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead && r.URL.Path == "/astroguide-charts/charts/present.pdf" {
			w.Header().Set("Content-Length", "8")
			w.Header().Set("ETag", `"abc"`)
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Last-Modified", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Format(http.TimeFormat))
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s, err := NewS3Store(S3Config{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "a",
		SecretKey: "b",
		Bucket:    "astroguide-charts",
	})
	if err != nil {
		t.Fatalf("NewS3Store() error = %v", err)
	}

	u, err := s.GetURL(context.Background(), "charts", "present.pdf")
	if err != nil {
		t.Fatalf("GetURL(present) error = %v", err)
	}
	if !strings.Contains(u, "/astroguide-charts/charts/present.pdf") || !strings.Contains(u, "X-Amz-Signature") {
		t.Fatalf("GetURL(present) = %q, want a presigned object link", u)
	}

	if _, err := s.GetURL(context.Background(), "charts", "missing.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetURL(missing) error = %v, want ErrNotFound", err)
	}
}
