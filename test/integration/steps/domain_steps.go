package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// registerDomainSteps registers steps that seed accounts, flats, tenants and
// expenses through the public API.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, iLogInAs)
	ctx.Step(`^I log out$`, iLogOut)
	ctx.Step(`^I own a flat named "([^"]*)" at "([^"]*)" with rent "([^"]*)"$`, iOwnAFlat)
	ctx.Step(`^the flat "([^"]*)" has a tenant "([^"]*)" paying "([^"]*)"$`, theFlatHasATenant)
	ctx.Step(`^the flat "([^"]*)" has a "([^"]*)" expense of "([^"]*)" dated "([^"]*)"$`, theFlatHasAnExpense)
}

// postJSON sends a JSON payload and decodes the response body into a generic
// map for follow-up assertions.
func (tc *TestContext) postJSON(endpoint string, payload map[string]any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := tc.do(http.MethodPost, endpoint, bytes.NewBuffer(body)); err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return decoded, nil
}

func (tc *TestContext) storeTokens(decoded map[string]any) error {
	accessToken, ok := decoded["access_token"].(string)
	if !ok {
		return fmt.Errorf("access_token missing from response: %s", string(tc.responseBody))
	}
	refreshToken, ok := decoded["refresh_token"].(string)
	if !ok {
		return fmt.Errorf("refresh_token missing from response: %s", string(tc.responseBody))
	}
	tc.accessToken = accessToken
	tc.refreshToken = refreshToken
	return nil
}

func iAmRegisteredAs(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	decoded, err := tc.postJSON("/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     "Test Owner",
		"password": password,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return tc.storeTokens(decoded)
}

func iLogInAs(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	decoded, err := tc.postJSON("/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return tc.storeTokens(decoded)
}

func iLogOut(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.postJSON("/api/v1/auth/logout", map[string]any{
		"refresh_token": tc.refreshToken,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("logout failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iOwnAFlat(ctx context.Context, name, address, rent string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	decoded, err := tc.postJSON("/api/v1/flats", map[string]any{
		"name":        name,
		"address":     address,
		"rent_amount": json.Number(rent),
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("flat creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	id, ok := decoded["id"].(string)
	if !ok {
		return fmt.Errorf("flat id missing from response: %s", string(tc.responseBody))
	}
	tc.flats[name] = id
	return nil
}

func theFlatHasATenant(ctx context.Context, flatName, tenantName, rent string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	flatID, ok := tc.flats[flatName]
	if !ok {
		return fmt.Errorf("unknown flat %q, create it first", flatName)
	}

	decoded, err := tc.postJSON("/api/v1/tenants", map[string]any{
		"flat_id":     flatID,
		"name":        tenantName,
		"rent_amount": json.Number(rent),
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("tenant creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	id, ok := decoded["id"].(string)
	if !ok {
		return fmt.Errorf("tenant id missing from response: %s", string(tc.responseBody))
	}
	tc.tenants[tenantName] = id
	return nil
}

func theFlatHasAnExpense(ctx context.Context, flatName, category, amount, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	flatID, ok := tc.flats[flatName]
	if !ok {
		return fmt.Errorf("unknown flat %q, create it first", flatName)
	}

	decoded, err := tc.postJSON("/api/v1/expenses", map[string]any{
		"flat_id":     flatID,
		"category":    category,
		"description": category + " expense",
		"amount":      json.Number(amount),
		"date":        date,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("expense creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	id, ok := decoded["id"].(string)
	if !ok {
		return fmt.Errorf("expense id missing from response: %s", string(tc.responseBody))
	}
	tc.expenses[category] = id
	return nil
}
