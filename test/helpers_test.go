//go:build integration_test

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/daya-2619/fitnesstracking/internal/middleware"
)

// doRequest sends a gateway authenticated request for ownerID and decodes
// the response into out, when out is not nil.
func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path, ownerID string,
	body any,
	expectedStatus int,
	out any,
) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(middleware.GatewaySecretHeader, testGatewaySecret)
	req.Header.Set(middleware.OwnerIDHeader, ownerID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), expectedStatus, resp.StatusCode, string(respBytes))

	if out != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, out))
	}
}
