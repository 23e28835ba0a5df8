package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func main() {
	var (
		baseURL    string
		testType   string
		customerID string
		income     float64
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Smoke test a running marketing decision server",
		RunE: func(_ *cobra.Command, _ []string) error {
			client := NewTestClient(baseURL)

			printHeader("Marketing Decision Agent - Test Suite")
			fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, client.baseURL, colorReset)

			switch testType {
			case "all":
				if !client.runAllTests() {
					return fmt.Errorf("smoke tests failed")
				}
			case "health":
				client.testHealthCheck()
			case "customer":
				client.testCustomerAnalysis(customerID, income)
			case "budget":
				client.testBudgetPrediction()
			case "not-found":
				client.testNotFound()
			default:
				fmt.Println("\nAvailable tests: all, health, customer, budget, not-found")
				return fmt.Errorf("unknown test type: %s", testType)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:3000", "Base URL of the server")
	cmd.Flags().StringVar(&testType, "test", "all", "Test type: all, health, customer, budget, not-found")
	cmd.Flags().StringVar(&customerID, "customer-id", "C123", "customer_id sent to analyze-customer")
	cmd.Flags().Float64Var(&income, "income", 50000, "income sent to analyze-customer")

	if err := cmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() bool {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Customer Analysis", func() bool { return tc.testCustomerAnalysis("C123", 50000) }},
		{"Budget Prediction", tc.testBudgetPrediction},
		{"Not Found", tc.testNotFound},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	return failed == 0
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	body, ok := tc.do(http.MethodGet, "/health", nil, http.StatusOK)
	if !ok {
		return false
	}

	var health map[string]any
	if err := json.Unmarshal(body, &health); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if health["status"] != "healthy" {
		printError(fmt.Sprintf("Expected status 'healthy', got '%v'", health["status"]))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testCustomerAnalysis(customerID string, income float64) bool {
	printTestHeader("Testing Customer Analysis")

	request := map[string]any{
		"customer_id": customerID,
		"age":         34,
		"income":      income,
		"interests":   []string{"technology", "travel"},
		"location":    "Madrid",
	}

	body, ok := tc.do(http.MethodPost, "/api/analyze-customer", request, http.StatusOK)
	if !ok {
		return false
	}

	var response struct {
		Success  bool `json:"success"`
		Analysis struct {
			Profile struct {
				CustomerID    string  `json:"customer_id"`
				LifetimeValue float64 `json:"lifetime_value"`
			} `json:"profile"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if !response.Success {
		printError("Expected success=true")
		return false
	}

	if response.Analysis.Profile.CustomerID != customerID {
		printError(fmt.Sprintf("Expected customer_id '%s', got '%s'", customerID, response.Analysis.Profile.CustomerID))
		return false
	}

	printSuccess(fmt.Sprintf("Customer analysis completed (lifetime_value=%.0f)", response.Analysis.Profile.LifetimeValue))
	printJSON(body)
	return true
}

func (tc *TestClient) testBudgetPrediction() bool {
	printTestHeader("Testing Budget Prediction")

	request := map[string]any{
		"campaign_duration":   30,
		"target_audience":     "millennials",
		"conversion_rate":     2.5,
		"marketing_objective": "sales",
		"competition_level":   "medium",
	}

	body, ok := tc.do(http.MethodPost, "/api/predict-budget", request, http.StatusOK)
	if !ok {
		return false
	}

	var response map[string]any
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	budget, _ := response["budget"].(string)
	if !strings.HasPrefix(budget, "€") {
		printError(fmt.Sprintf("Expected a euro amount, got '%s'", budget))
		return false
	}

	printSuccess(fmt.Sprintf("Budget prediction completed (%s at %v ROI)", budget, response["roi"]))
	printJSON(body)
	return true
}

func (tc *TestClient) testNotFound() bool {
	printTestHeader("Testing Unknown Route")

	body, ok := tc.do(http.MethodGet, "/nonexistent", nil, http.StatusNotFound)
	if !ok {
		return false
	}

	var response struct {
		AvailableEndpoints []string `json:"available_endpoints"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	if len(response.AvailableEndpoints) != 6 {
		printError(fmt.Sprintf("Expected 6 endpoints, got %d", len(response.AvailableEndpoints)))
		return false
	}

	printSuccess("Unknown route reported with endpoint list")
	return true
}

func (tc *TestClient) do(method, path string, payload any, wantStatus int) ([]byte, bool) {
	url := tc.baseURL + path
	fmt.Printf("%s %s\n", method, url)

	var reader io.Reader
	if payload != nil {
		jsonData, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Printf("%sRequest:%s\n%s\n\n", colorYellow, colorReset, string(jsonData))
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		printError(fmt.Sprintf("Failed to build request: %v", err))
		return nil, false
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != wantStatus {
		printError(fmt.Sprintf("Expected status %d, got %d", wantStatus, resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return nil, false
	}

	return body, true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
