package folio

import (
	"io"
	"net/http"
	"path"
	"strings"
	"testing"
)

// stubTransport serves a canned chart response per symbol, keyed by the last
// path segment of the request.
type stubTransport struct {
	bodies map[string]string
}

func (s stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, ok := s.bodies[path.Base(req.URL.Path)]
	status := http.StatusOK
	if !ok {
		status, body = http.StatusNotFound, "not found"
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func chartBody(price string) string {
	return `{"chart":{"result":[{"meta":{"regularMarketPrice":` + price + `}}]}}`
}

func TestQuotes(t *testing.T) {
	client := &http.Client{Transport: stubTransport{bodies: map[string]string{
		"ACME": chartBody("123.45"),
		"ZERO": chartBody("0"),
	}}}

	quotes, failures := Quotes(client, []string{"ACME", "ZERO", "GONE"}, "EUR")

	if got, ok := quotes["ACME"]; !ok || !got.Equal(EUR(123.45)) {
		t.Errorf("quotes[ACME] = %s %v, want 123.45", got, ok)
	}
	if _, ok := failures["ZERO"]; !ok {
		t.Errorf("a zero quote should be reported as a failure")
	}
	if _, ok := failures["GONE"]; !ok {
		t.Errorf("an HTTP error should be reported as a failure")
	}
	if _, ok := quotes["GONE"]; ok {
		t.Errorf("a failed symbol should not be quoted")
	}
	if len(quotes) != 1 || len(failures) != 2 {
		t.Errorf("quotes/failures = %d/%d, want 1/2", len(quotes), len(failures))
	}
}
