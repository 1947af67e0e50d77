package clients

import (
	"net/http"
	"time"
)

// NewHTTPClient cria o cliente HTTP usado pelo simulador.
// As requisições são sequenciais, então poucas conexões ociosas bastam.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}
