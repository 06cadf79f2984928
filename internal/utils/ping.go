package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ciberehd/proposaldb/internal/services"
)

// ProbeHealth fetches the health report from a running server. A 503 still
// yields a report; the caller decides the exit code from its status.
func ProbeHealth(serverURL string) (*services.HealthCheckResult, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(serverURL + "/api/health")
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", serverURL, err)
	}
	defer resp.Body.Close()

	var result services.HealthCheckResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	return &result, nil
}
