package mocks

import (
	"bytes"
	"io"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// MockHTTPClient é um mock testify de clients.HTTPClient.
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	args := m.Called(url, contentType, body)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

// NewResponse monta uma resposta com o status e corpo informados.
func NewResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}
