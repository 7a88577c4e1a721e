package folio

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
)

// Quote fetching against Yahoo's chart endpoint. A failed symbol never
// aborts the batch: the caller gets the quotes that resolved, plus a map of
// per-symbol errors.

const quoteEndpoint = "https://query2.finance.yahoo.com/v8/finance/chart/"

// quotePath extracts the latest regular-market price from a chart response.
const quotePath = "$.chart.result[0].meta.regularMarketPrice"

// Quotes fetches the current market price of each symbol, in the given
// display currency. The returned error map is non-empty when some symbols
// could not be resolved; quotes for the other symbols are still returned.
func Quotes(client *http.Client, symbols []string, currency string) (map[string]Money, map[string]error) {
	quotes := make(map[string]Money)
	failures := make(map[string]error)
	for _, symbol := range symbols {
		price, err := quote(client, symbol)
		if err != nil {
			failures[symbol] = err
			continue
		}
		quotes[symbol] = M(price, currency)
	}
	return quotes, failures
}

func quote(client *http.Client, symbol string) (float64, error) {
	addr := quoteEndpoint + url.PathEscape(symbol)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	jval, err := jsonpath.Get(quotePath, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", symbol, quotePath, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q not a float: %v", symbol, quotePath, jval)
	}
	if val == 0 {
		return 0, fmt.Errorf("empty quote for %q", symbol)
	}
	return val, nil
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The key embeds today's date, so cached quotes expire daily.
	key := fmt.Sprintf("%s %s %s", Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// Best effort: a cache write failure never fails the request.
	c.put(key, resp)
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0o600)
}

// DailyCachedClient returns an HTTP client whose responses are cached on
// disk until the end of the day.
func DailyCachedClient() *http.Client {
	return &http.Client{Transport: &diskCache{http.DefaultTransport}}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
