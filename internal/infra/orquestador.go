package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EjecucionRequest asks the fulfillment orchestrator to start one execution
// of the multi-step order workflow. Nombre must be deterministic per trigger
// so the orchestrator can trace an execution back to its order.
type EjecucionRequest struct {
	Nombre string          `json:"nombre"`
	Input  json.RawMessage `json:"input"`
}

// EjecucionResponse is returned by the orchestrator once the execution is
// accepted.
type EjecucionResponse struct {
	EjecucionARN string `json:"ejecucion_arn"`
	FechaInicio  string `json:"fecha_inicio"`
}

// OrquestadorClient is an HTTP client for the external workflow orchestrator.
// Its internals (the fulfillment steps themselves) are out of scope; this
// backend only starts executions.
type OrquestadorClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrquestadorClient(baseURL string) *OrquestadorClient {
	return &OrquestadorClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// IniciarEjecucion sends a POST to the orchestrator and returns the accepted
// execution.
func (c *OrquestadorClient) IniciarEjecucion(ctx context.Context, payload EjecucionRequest) (*EjecucionResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("orquestador: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ejecuciones", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("orquestador: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orquestador: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("orquestador: returned %d", resp.StatusCode)
	}

	var result EjecucionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("orquestador: decode response: %w", err)
	}
	return &result, nil
}
