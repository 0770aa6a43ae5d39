package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// RemoteAgent asks an agent server for moves over HTTP. Transport errors
// and illegal answers fall back to a random legal column.
type RemoteAgent struct {
	name    string
	baseURL string
	client  *http.Client
	timeout time.Duration
	rng     *rand.Rand
}

func NewRemoteAgent(name, baseURL string, timeout time.Duration) *RemoteAgent {
	return &RemoteAgent{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		timeout: timeout,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (a *RemoteAgent) Name() string {
	return a.name
}

func (a *RemoteAgent) FindMove(obs game.Observation) (int, searcher.SearchMetric) {
	legal := obs.Mask.Legal()
	if len(legal) == 0 {
		return -1, searcher.SearchMetric{}
	}

	start := time.Now()
	col, err := a.requestMove(obs)
	metric := searcher.SearchMetric{Searcher: "remote", Duration: time.Since(start)}
	if err == nil && !obs.Mask.Allows(col) {
		err = fmt.Errorf("column %d: %w", col, game.ErrInvalidColumn)
	}
	if err != nil {
		log.Warn().Err(err).Str("agent", a.name).Msg("remote agent failed, playing a random column")
		metric.Fallback = true
		return legal[a.rng.Intn(len(legal))], metric
	}
	return col, metric
}

// requestMove posts the observation to /findmove and decodes the column
func (a *RemoteAgent) requestMove(obs game.Observation) (int, error) {
	body, err := json.Marshal(obs)
	if err != nil {
		return -1, fmt.Errorf("failed to encode observation: %w", err)
	}

	ctx := context.Background()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/findmove", bytes.NewReader(body))
	if err != nil {
		return -1, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return -1, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return -1, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, out)
	}

	var payload struct {
		Column *int `json:"column"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return -1, fmt.Errorf("failed to decode move: %w", err)
	}
	if payload.Column == nil {
		return -1, fmt.Errorf("agent response has no column")
	}
	return *payload.Column, nil
}
