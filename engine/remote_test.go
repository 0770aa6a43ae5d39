package engine

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connect4/game"
	"connect4/searcher/agent"

	"github.com/stretchr/testify/require"
)

func TestRemoteAgent(t *testing.T) {
	srv := httptest.NewServer(agent.NewServer(agent.NewRuleAgent()).Handler())
	defer srv.Close()

	t.Run("asks the server", func(t *testing.T) {
		remote := NewRemoteAgent("remote-rules", srv.URL+"/", time.Second)
		col, metric := remote.FindMove(game.ObservationFor(game.MustParseBoard("XX.....", "OOO...."), game.SideA))
		require.Equal(t, 3, col)
		require.False(t, metric.Fallback)
		require.Equal(t, "remote-rules", remote.Name())
	})

	t.Run("empty mask", func(t *testing.T) {
		remote := NewRemoteAgent("remote", srv.URL, time.Second)
		col, _ := remote.FindMove(game.Observation{})
		require.Equal(t, -1, col)
	})

	t.Run("server error falls back", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer failing.Close()

		remote := NewRemoteAgent("remote", failing.URL, time.Second)
		obs := game.ObservationFor(game.NewBoard(), game.SideA)
		col, metric := remote.FindMove(obs)
		require.True(t, obs.Mask.Allows(col))
		require.True(t, metric.Fallback)
	})

	t.Run("illegal answer falls back", func(t *testing.T) {
		liar := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"column":0}`))
		}))
		defer liar.Close()

		b := game.MustParseBoard(
			"X......",
			"O......",
			"X......",
			"O......",
			"X......",
			"O......",
		)
		obs := game.ObservationFor(b, game.SideA)
		remote := NewRemoteAgent("remote", liar.URL, time.Second)
		for i := 0; i < 20; i++ {
			col, metric := remote.FindMove(obs)
			require.NotEqual(t, 0, col)
			require.True(t, metric.Fallback)
		}
	})

	t.Run("plays a full game", func(t *testing.T) {
		remote := NewRemoteAgent("remote-rules", srv.URL, time.Second)
		_, gameMetric, moveMetrics := LocalEngine(remote, agent.NewRandomAgent(9)).Run()
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		for _, m := range moveMetrics {
			require.False(t, m.Fallback)
		}
	})
}
