package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentIdempotentInitiate fires the same idempotency key at
// /payments/initiate from many goroutines at once. The idempotency gate
// (cache SETNX + durable fallback) must collapse them to exactly one
// transaction: every response should carry the same transaction id.
func TestConcurrentIdempotentInitiate(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	accessKey, secretKey := registerAndGetKeys(t, app)

	idemKey := "concurrent-idem-key-001"
	payBody, _ := json.Marshal(map[string]interface{}{
		"amount":          "250.00",
		"currency":        "USD",
		"payment_method":  "CARD",
		"card_pan":        "4242424242424242",
		"card_cvv":        "123",
		"idempotency_key": idemKey,
	})

	concurrency := 20
	var wg sync.WaitGroup
	ids := make([]string, concurrency)
	statuses := make([]int, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := signedPost(t, app, secretKey, accessKey, "/api/v1/payments/initiate", payBody)
			defer resp.Body.Close()
			statuses[idx] = resp.StatusCode

			body, _ := io.ReadAll(resp.Body)
			var r map[string]interface{}
			if err := json.Unmarshal(body, &r); err == nil {
				if data, ok := r["data"].(map[string]interface{}); ok {
					if id, ok := data["id"].(string); ok {
						ids[idx] = id
					}
				}
			}
		}(i)
	}
	wg.Wait()

	unique := make(map[string]struct{})
	for i, id := range ids {
		require.True(t, statuses[i] == http.StatusAccepted || statuses[i] == http.StatusOK,
			"request %d unexpected status %d", i, statuses[i])
		require.NotEmpty(t, id, "request %d returned no transaction id", i)
		unique[id] = struct{}{}
	}

	assert.Len(t, unique, 1, "all concurrent requests with the same idempotency key must resolve to one transaction")
}

// TestConcurrentDistinctInitiations verifies that concurrent initiations
// with no idempotency key (each gets its own generated key) are never
// collapsed: each must produce its own transaction.
func TestConcurrentDistinctInitiations(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	accessKey, secretKey := registerAndGetKeys(t, app)

	concurrency := 30
	var wg sync.WaitGroup
	ids := make([]string, concurrency)
	var acceptedCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payBody, _ := json.Marshal(map[string]interface{}{
				"amount":         "10.00",
				"currency":       "USD",
				"payment_method": "CARD",
				"card_pan":       "4242424242424242",
				"card_cvv":       "123",
			})
			resp := signedPost(t, app, secretKey, accessKey, "/api/v1/payments/initiate", payBody)
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode == http.StatusAccepted {
				acceptedCount.Add(1)
				var r map[string]interface{}
				if err := json.Unmarshal(body, &r); err == nil {
					if data, ok := r["data"].(map[string]interface{}); ok {
						if id, ok := data["id"].(string); ok {
							ids[idx] = id
						}
					}
				}
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int64(concurrency), acceptedCount.Load(), "every independently-initiated payment should be accepted")

	unique := make(map[string]struct{})
	for _, id := range ids {
		require.NotEmpty(t, id)
		unique[id] = struct{}{}
	}
	assert.Len(t, unique, concurrency, "each independently-initiated payment must produce its own transaction")
}

// TestConcurrentStatusPolling exercises the CAS-driven state machine: many
// readers poll status while the orchestrator's async consumer advances the
// transaction through PROCESSING to a terminal state. No reader should ever
// observe a transaction moving backwards, and all readers must eventually
// observe the same terminal status.
func TestConcurrentStatusPolling(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	accessKey, secretKey := registerAndGetKeys(t, app)

	payBody, _ := json.Marshal(map[string]interface{}{
		"amount":         "75.00",
		"currency":       "USD",
		"payment_method": "CARD",
		"card_pan":       "4242424242424242",
		"card_cvv":       "123",
	})
	resp := signedPost(t, app, secretKey, accessKey, "/api/v1/payments/initiate", payBody)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var payResp map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payResp))
	txID := payResp["data"].(map[string]interface{})["id"].(string)

	readers := 10
	var wg sync.WaitGroup
	terminalSeen := make([]string, readers)

	rank := map[string]int{"PENDING": 0, "PROCESSING": 1, "SUCCESS": 2, "FAILED": 2, "CANCELLED": 2}

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			lastRank := -1
			for attempt := 0; attempt < 100; attempt++ {
				sresp, err := signedGet(app, secretKey, accessKey, "/api/v1/payments/status/"+txID)
				require.NoError(t, err)
				var sr map[string]interface{}
				require.NoError(t, json.NewDecoder(sresp.Body).Decode(&sr))
				sresp.Body.Close()
				status := sr["data"].(map[string]interface{})["status"].(string)

				r, ok := rank[status]
				require.True(t, ok, "unexpected status %q", status)
				require.GreaterOrEqual(t, r, lastRank, "reader %d observed status move backwards: %s", idx, status)
				lastRank = r

				if r == 2 {
					terminalSeen[idx] = status
					return
				}
				time.Sleep(10 * time.Millisecond)
			}
			t.Errorf("reader %d never observed a terminal status", idx)
		}(i)
	}
	wg.Wait()

	first := terminalSeen[0]
	require.NotEmpty(t, first)
	for i, s := range terminalSeen {
		assert.Equal(t, first, s, "reader %d observed a different terminal status", i)
	}
}
