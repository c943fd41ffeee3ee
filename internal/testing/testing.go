// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/jellycli/internal/models"
)

// MockMediaService is a scriptable test double for [services.MediaService].
//
// Children maps parent ids to the item lists returned for them. Calls records
// every fetch in order ("collections" or "children:<id>") so tests can assert
// navigation behavior.
type MockMediaService struct {
	Collections []models.Item
	Children    map[string][]models.Item
	Err         error
	Calls       []string
}

func (m *MockMediaService) ListCollections(ctx context.Context) ([]models.Item, error) {
	m.Calls = append(m.Calls, "collections")
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Collections, nil
}

func (m *MockMediaService) ListChildren(ctx context.Context, parentID string) ([]models.Item, error) {
	m.Calls = append(m.Calls, "children:"+parentID)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Children[parentID], nil
}

func (m *MockMediaService) DownloadURL(itemID string) string {
	return fmt.Sprintf("http://mock/Items/%s/Download?api_key=test", itemID)
}

func (m *MockMediaService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
