// Package entropy supplies the game's randomness: dice rolls, steal picks and
// deck shuffles. A random.org pool backs them when an API key is configured;
// otherwise crypto/rand is used. Seeded sources make replays reproducible.
package entropy

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	mathrand "math/rand"
	"net/http"
	"sync"
	"time"
)

// Client provides true random die faces from random.org with a local pool.
type Client struct {
	apiKey string
	client *http.Client

	mu   sync.Mutex
	pool []int
}

// NewClient creates a random.org client. Returns nil if apiKey is empty.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Die returns a face in [1, 6]. Uses the pool, refilling from random.org
// when low. Falls back to crypto/rand on API failure.
func (c *Client) Die() int {
	if !c.Enabled() {
		return cryptoIntn(6) + 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < 10 {
		c.refill()
	}
	if len(c.pool) == 0 {
		return cryptoIntn(6) + 1
	}

	val := c.pool[0]
	c.pool = c.pool[1:]
	return val
}

func (c *Client) refill() {
	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "generateIntegers",
		"params": map[string]any{
			"apiKey":      c.apiKey,
			"n":           100,
			"min":         1,
			"max":         6,
			"replacement": true,
		},
		"id": 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		slog.Debug("random.org marshal failed", "error", err)
		return
	}

	resp, err := c.client.Post("https://api.random.org/json-rpc/4/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Debug("random.org fetch failed", "error", err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("random.org read failed", "error", err)
		return
	}

	var result struct {
		Result struct {
			Random struct {
				Data []int `json:"data"`
			} `json:"random"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		slog.Debug("random.org parse failed", "error", err)
		return
	}
	if result.Error != nil {
		slog.Debug("random.org API error", "error", result.Error.Message)
		return
	}

	for _, v := range result.Result.Random.Data {
		if v >= 1 && v <= 6 {
			c.pool = append(c.pool, v)
		}
	}
	slog.Debug("random.org pool refilled", "count", len(result.Result.Random.Data))
}

// cryptoIntn returns a value in [0, n) from crypto/rand.
func cryptoIntn(n int) int {
	if n <= 0 {
		panic("entropy: non-positive bound")
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen.
		return 0
	}
	return int(binary.LittleEndian.Uint64(buf[:]) % uint64(n))
}

// Intn is a source of indices in [0, n).
type Intn func(n int) int

// CryptoIntn draws from crypto/rand.
func CryptoIntn() Intn {
	return cryptoIntn
}

// SeededIntn draws from a deterministic generator, for reproducible replays.
func SeededIntn(seed int64) Intn {
	rng := mathrand.New(mathrand.NewSource(seed))
	return rng.Intn
}
