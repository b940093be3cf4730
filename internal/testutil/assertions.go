package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PostJSON sends body as JSON and returns the response.
func PostJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err, "POST %s", url)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// Get issues a GET and returns the response.
func Get(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err, "GET %s", url)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// Delete issues a DELETE and returns the response.
func Delete(t *testing.T, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "DELETE %s", url)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// DecodeJSON reads the response body into v.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), "unmarshal response: %s", string(body))
}

// AssertErrorMessage verifies the status code and the {message} body.
func AssertErrorMessage(t *testing.T, resp *http.Response, status int, message string) {
	t.Helper()

	assert.Equal(t, status, resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	DecodeJSON(t, resp, &body)
	assert.Equal(t, message, body.Message)
}
