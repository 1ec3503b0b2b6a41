package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Smoke test against a running server: ppi serve, then go run ./cmd/test_integration.

func main() {
	baseURL := os.Getenv("PPI_SERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	fmt.Println("1. Health check...")
	if _, ok := sendRequest(baseURL + "/healthz"); !ok {
		fmt.Println("FAILED: Health check")
		os.Exit(1)
	}
	fmt.Println("PASSED: Health check")

	fmt.Println("2. Analysing TP53 via STRING...")
	q := url.Values{"protein": {"TP53"}, "provider": {"string"}}
	body, ok := sendRequest(baseURL + "/api/v1/analysis?" + q.Encode())
	if !ok {
		fmt.Println("FAILED: Analysis")
		os.Exit(1)
	}

	var analysis struct {
		NodeCount int `json:"node_count"`
		EdgeCount int `json:"edge_count"`
		Rankings  []struct {
			Metric  string `json:"metric"`
			Entries []struct {
				Symbol string  `json:"symbol"`
				Score  float64 `json:"score"`
			} `json:"entries"`
		} `json:"rankings"`
	}
	if err := json.Unmarshal(body, &analysis); err != nil {
		fmt.Printf("FAILED: Analysis response is not JSON: %v\n", err)
		os.Exit(1)
	}
	if analysis.NodeCount == 0 || len(analysis.Rankings) == 0 {
		fmt.Println("FAILED: Analysis returned no graph")
		os.Exit(1)
	}
	fmt.Printf("PASSED: Analysis (%d nodes, %d edges)\n", analysis.NodeCount, analysis.EdgeCount)
	for _, r := range analysis.Rankings {
		if len(r.Entries) > 0 {
			fmt.Printf("  %s: %s %.4f\n", r.Metric, r.Entries[0].Symbol, r.Entries[0].Score)
		}
	}

	fmt.Println("3. Metrics endpoint...")
	if _, ok := sendRequest(baseURL + "/metrics"); !ok {
		fmt.Println("FAILED: Metrics")
		os.Exit(1)
	}
	fmt.Println("PASSED: Metrics")
}

func sendRequest(endpoint string) ([]byte, bool) {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}
	return respBody, true
}
