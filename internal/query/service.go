package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sheharzad-developer/smart-energy-monitor/internal/clients"
)

// FallbackResponse é impresso quando a resposta não traz o campo "response".
const FallbackResponse = "Sem resposta"

var ErrUnexpectedStatus = errors.New("status inesperado do serviço de consulta")

type Request struct {
	Query string `json:"query"`
}

type QueryService interface {
	// Envia a pergunta e devolve o campo "response" da resposta.
	Ask(query string) (string, error)
}

type queryService struct {
	queryURL   string
	httpClient clients.HTTPClient
}

type ServiceOptions func(*queryService)

func WithCustomHTTPClient(client clients.HTTPClient) ServiceOptions {
	return func(q *queryService) {
		q.httpClient = client
	}
}

var marshalFunc = json.Marshal

func NewQueryService(queryURL string, timeout time.Duration, opts ...ServiceOptions) QueryService {
	q := &queryService{
		queryURL:   queryURL,
		httpClient: clients.NewHTTPClient(timeout),
	}
	for _, opt := range opts {
		opt(q)
	}
	registerMetrics()
	return q
}

func (q *queryService) Ask(query string) (string, error) {
	jsonData, err := marshalFunc(Request{Query: query})
	if err != nil {
		return "", fmt.Errorf("erro ao codificar a pergunta: %w", err)
	}

	resp, err := q.httpClient.Post(q.queryURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("não foi possível acessar o serviço de IA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	answer, ok := body["response"]
	if !ok || answer == nil {
		return FallbackResponse, nil
	}
	if s, ok := answer.(string); ok {
		return s, nil
	}
	return fmt.Sprint(answer), nil
}

// SmokeTest faz uma única pergunta ao serviço e imprime o resultado em out.
// Falhas são apenas registradas; devolve true se a resposta veio com status 200.
func SmokeTest(svc QueryService, query string, out io.Writer) bool {
	fmt.Fprintln(out, "\nTestando o endpoint de IA...")

	answer, err := svc.Ask(query)
	if err != nil {
		log.Error().Msgf("Falha no teste do endpoint de IA: %v", err)
		if errors.Is(err, ErrUnexpectedStatus) {
			fmt.Fprintf(out, "Erro no endpoint de IA: %v\n", err)
			smokeTests.WithLabelValues("rejected").Inc()
		} else {
			fmt.Fprintf(out, "Não foi possível acessar o serviço de IA: %v\n", err)
			fmt.Fprintln(out, "Verifique se o serviço de IA está rodando")
			smokeTests.WithLabelValues("failed").Inc()
		}
		return false
	}

	fmt.Fprintf(out, "Resposta da IA: %s\n", answer)
	smokeTests.WithLabelValues("success").Inc()
	return true
}
