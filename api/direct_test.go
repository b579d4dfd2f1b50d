package api

import (
	"encoding/json"
	"testing"
)

func Test_jfloat(t *testing.T) {
	doc := `{"chart":{"result":[{"meta":{"symbol":"SPY","regularMarketPrice":534.12,"chartPreviousClose":529.8}}]}}`
	var jobj any
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatal(err)
	}

	got, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice", "SPY")
	if err != nil {
		t.Fatalf("jfloat() error = %v", err)
	}
	if got != 534.12 {
		t.Errorf("jfloat() = %v, want 534.12", got)
	}

	if _, err := jfloat(jobj, "$.chart.result[0].meta.symbol", "SPY"); err == nil {
		t.Error("jfloat() on a string value: want error, got nil")
	}
	if _, err := jfloat(jobj, "$.chart.result[0].meta.missing", "SPY"); err == nil {
		t.Error("jfloat() on a missing path: want error, got nil")
	}
}
