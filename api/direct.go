package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

/*
	Yahoo's chart endpoint, same feed the backend's price source reads.
	Schema is loose and has shifted over time, so values are extracted by
	path rather than decoded into structs:

	{
	  "chart": {
	    "result": [
	      {
	        "meta": {
	          "symbol": "SPY",
	          "regularMarketPrice": 534.12,
	          "chartPreviousClose": 529.80,
	          ...
*/

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// DirectQuote fetches a spot price straight from the public quote feed,
// bypassing the backend. It is the fallback for when the backend price
// endpoint is down; derived the same way: percent change against the
// previous close.
func DirectQuote(ctx context.Context, symbol string) (stockapp.Quote, error) {
	addr := yahooChartURL + url.PathEscape(symbol) + "?interval=1d&range=1d"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return stockapp.Quote{}, err
	}
	// The feed rejects the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; nobull-cli)")

	resp, err := new(http.Client).Do(req)
	if err != nil {
		return stockapp.Quote{}, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return stockapp.Quote{}, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return stockapp.Quote{}, err
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return stockapp.Quote{}, fmt.Errorf("error parsing %q: %w", symbol, err)
	}

	price, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice", symbol)
	if err != nil {
		return stockapp.Quote{}, err
	}
	previous, err := jfloat(jobj, "$.chart.result[0].meta.chartPreviousClose", symbol)
	if err != nil {
		return stockapp.Quote{}, err
	}

	var change stockapp.Percent
	if previous != 0 {
		change = stockapp.Percent((price - previous) / previous * 100)
	}
	return stockapp.Quote{
		Symbol:        symbol,
		Price:         stockapp.USD(price),
		ChangePercent: change,
	}, nil
}

// jfloat extracts a float by jsonpath from a loosely typed document.
func jfloat(jobj any, path, name string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", name, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q is not a float: %v", name, path, jval)
	}
	return val, nil
}
