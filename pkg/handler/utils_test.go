package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tus/rangeserve/pkg/handler"
)

//go:generate mockgen -package handler_test -source utils_test.go -aux_files handler=resource.go -destination=handler_mock_test.go

// FullDataStore is the interface used by mockgen(1) to generate a mocked data
// store used for testing (see https://github.com/golang/mock).
type FullDataStore interface {
	handler.DataStore
}

type FullResource interface {
	handler.Resource
}

type httpTest struct {
	Name string

	Method string
	URL    string

	ReqHeader map[string]string

	Code      int
	ResBody   string
	ResHeader map[string]string
}

func (test *httpTest) Run(handler http.Handler, t *testing.T) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(test.Method, test.URL, nil)
	req.RequestURI = test.URL

	// Add headers
	for key, value := range test.ReqHeader {
		req.Header.Set(key, value)
	}

	req.Host = "rangeserve.example"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != test.Code {
		t.Errorf("Expected %v %s as status code (got %v %s)", test.Code, http.StatusText(test.Code), w.Code, http.StatusText(w.Code))
	}

	for key, value := range test.ResHeader {
		header := w.Header().Get(key)

		if value != header {
			t.Errorf("Expected '%s' as '%s' (got '%s')", value, key, header)
		}
	}

	if test.ResBody != "" && w.Body.String() != test.ResBody {
		t.Errorf("Expected '%s' as body (got '%s'", test.ResBody, w.Body.String())
	}

	return w
}

// stringStore serves the resources from an in-memory map. It records
// whether the resources handed out have been closed again.
type stringStore struct {
	resources map[string]handler.ResourceInfo
	contents  map[string]string
	closed    map[string]bool
}

func newStringStore() *stringStore {
	return &stringStore{
		resources: make(map[string]handler.ResourceInfo),
		contents:  make(map[string]string),
		closed:    make(map[string]bool),
	}
}

func (store *stringStore) put(info handler.ResourceInfo, content string) {
	if !info.SizeIsDeferred {
		info.Size = int64(len(content))
	}
	store.resources[info.ID] = info
	store.contents[info.ID] = content
}

func (store *stringStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	info, ok := store.resources[id]
	if !ok {
		return nil, handler.ErrNotFound
	}

	store.closed[id] = false
	closer := closerFunc(func() error {
		store.closed[id] = true
		return nil
	})

	return handler.NewReadSeekerResource(info, strings.NewReader(store.contents[id]), closer), nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}
