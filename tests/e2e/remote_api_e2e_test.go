//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestRemoteAPI_CityLifecycle(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 20 * time.Second}

	status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/cities", map[string]any{"name": "e2e", "size": 12, "seed": 7})
	if status != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", status, string(body))
	}
	var created map[string]any
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal create: %v body=%s", err, string(body))
	}
	cityID, _ := created["city_id"].(string)
	if cityID == "" {
		t.Fatalf("missing city_id: %s", string(body))
	}
	cityURL := baseURL + "/api/cities/" + cityID

	t.Run("place and reject", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, cityURL+"/place", map[string]any{"x": 0, "y": 0, "type": "road"})
		if status != http.StatusOK {
			t.Fatalf("place status=%d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodPost, cityURL+"/place", map[string]any{"x": 0, "y": 0, "type": "road"})
		if status != http.StatusConflict {
			t.Fatalf("expected 409 on occupied tile, got %d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodPost, cityURL+"/place", map[string]any{"x": 12, "y": 0, "type": "road"})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400 out of bounds, got %d body=%s", status, string(body))
		}
	})

	t.Run("tick status events", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, cityURL+"/tick", map[string]any{"steps": 3})
		if status != http.StatusOK {
			t.Fatalf("tick status=%d body=%s", status, string(body))
		}
		var tick map[string]any
		if err := json.Unmarshal(body, &tick); err != nil {
			t.Fatalf("unmarshal tick: %v", err)
		}
		if len(asSlice(tick["grown"])) != 3 {
			t.Fatalf("expected 3 grown tiles, body=%s", string(body))
		}

		status, body = mustJSON(t, client, http.MethodGet, cityURL+"/status", nil)
		if status != http.StatusOK {
			t.Fatalf("status status=%d body=%s", status, string(body))
		}
		var st map[string]any
		if err := json.Unmarshal(body, &st); err != nil {
			t.Fatalf("unmarshal status: %v", err)
		}
		if asMap(st["summary"])["sim_time"] != 3.0 {
			t.Fatalf("expected sim_time 3, body=%s", string(body))
		}

		status, body = mustJSON(t, client, http.MethodGet, cityURL+"/events?limit=10", nil)
		if status != http.StatusOK {
			t.Fatalf("events status=%d body=%s", status, string(body))
		}
		var ev map[string]any
		if err := json.Unmarshal(body, &ev); err != nil {
			t.Fatalf("unmarshal events: %v", err)
		}
		if len(asSlice(ev["events"])) < 3 {
			t.Fatalf("expected created, placed and ticked events, body=%s", string(body))
		}
	})

	t.Run("find and inspect", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, cityURL+"/find?x=6&y=6&match=empty&max_distance=3", nil)
		if status != http.StatusOK {
			t.Fatalf("find status=%d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodGet, cityURL+"/tiles?x=6&y=6", nil)
		if status != http.StatusOK {
			t.Fatalf("inspect status=%d body=%s", status, string(body))
		}
	})

	t.Run("ops kpi", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/ops/kpi", nil)
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
	})

	status, body = mustJSON(t, client, http.MethodDelete, cityURL, nil)
	if status != http.StatusNoContent {
		t.Fatalf("end status=%d body=%s", status, string(body))
	}
	status, _ = mustJSON(t, client, http.MethodGet, cityURL+"/status", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after end, got %d", status)
	}
}

func mustJSON(t *testing.T, client *http.Client, method, url string, body any) (int, []byte) {
	t.Helper()
	status, respBody, err := doRequest(client, method, url, body)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return status, respBody
}

func doRequest(client *http.Client, method, url string, body any) (int, []byte, error) {
	var payloadBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		payloadBytes = b
	}

	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var payload io.Reader
		if len(payloadBytes) > 0 {
			payload = bytes.NewReader(payloadBytes)
		}
		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return 0, nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
