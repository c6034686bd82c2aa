package chessfeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

const lichessFeed = `{"id":"abcd1234","winner":"white","lastMoveAt":1709290000000,"players":{"white":{"user":{"name":"alice"}},"black":{"user":{"name":"bob"}}},"opening":{"eco":"C20","name":"King's Pawn Game"},"clock":{"initial":180,"increment":2}}
{"id":"efgh5678","lastMoveAt":1707954000000,"players":{"white":{"user":{"name":"carol"}},"black":{}},"clock":{"initial":30,"increment":0}}
this line is not json
{"id":"ijkl9012","winner":"black","createdAt":1700000000000,"players":{"white":{},"black":{"user":{"name":"dave"}}}}
`

func newLichessTestClient(t *testing.T, body string, status int) *LichessClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/x-ndjson" {
			t.Errorf("Accept header = %q", got)
		}
		if got := r.URL.Query().Get("rated"); got != "true" {
			t.Errorf("rated = %q", got)
		}
		if got := r.URL.Query().Get("perfType"); got != "blitz,rapid,classical" {
			t.Errorf("perfType = %q", got)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewLichessClient(NewClient(WithTimeout(2*time.Second)), srv.URL, zap.NewNop())
}

func TestLichessRecent(t *testing.T) {
	client := newLichessTestClient(t, lichessFeed, http.StatusOK)

	games, err := client.Recent(context.Background(), "alice", 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	// The malformed line is skipped, the three valid ones survive.
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	first := games[0]
	if first.Platform != PlatformLichess {
		t.Errorf("platform = %q", first.Platform)
	}
	if first.White != "alice" || first.Black != "bob" {
		t.Errorf("players = %q vs %q", first.White, first.Black)
	}
	if first.Result != "1-0" {
		t.Errorf("result = %q", first.Result)
	}
	if first.Date != "2024.03.01" {
		t.Errorf("date = %q", first.Date)
	}
	if first.TimeControl != "3+2" {
		t.Errorf("time control = %q", first.TimeControl)
	}
	if first.Opening != "King's Pawn Game" || first.ECO != "C20" {
		t.Errorf("opening = %q eco = %q", first.Opening, first.ECO)
	}
	if first.URL != "https://lichess.org/abcd1234" {
		t.Errorf("url = %q", first.URL)
	}

	second := games[1]
	if second.Black != Unknown {
		t.Errorf("missing player name should map to Unknown, got %q", second.Black)
	}
	if second.Result != "1/2-1/2" {
		t.Errorf("absent winner should map to draw, got %q", second.Result)
	}
	if second.TimeControl != "30+0" {
		t.Errorf("sub-minute control = %q, want 30+0", second.TimeControl)
	}

	third := games[2]
	if third.Result != "0-1" {
		t.Errorf("winner black should map to 0-1, got %q", third.Result)
	}
	if third.Opening != Unknown || third.TimeControl != Unknown {
		t.Errorf("missing opening/clock should map to Unknown, got %q / %q", third.Opening, third.TimeControl)
	}
	if third.Date == "" {
		t.Errorf("createdAt fallback should yield a date")
	}
}

func TestLichessRecent_BadStatus(t *testing.T) {
	client := newLichessTestClient(t, "", http.StatusTooManyRequests)
	_, err := client.Recent(context.Background(), "alice", 5)
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}

func TestLichessRecent_EmptyBody(t *testing.T) {
	client := newLichessTestClient(t, "\n\n", http.StatusOK)
	games, err := client.Recent(context.Background(), "alice", 5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
}

func TestResultFromWinner(t *testing.T) {
	if got := resultFromWinner("white"); got != "1-0" {
		t.Errorf("white => %q", got)
	}
	if got := resultFromWinner("black"); got != "0-1" {
		t.Errorf("black => %q", got)
	}
	if got := resultFromWinner(""); got != "1/2-1/2" {
		t.Errorf("absent => %q", got)
	}
}

func TestDateFromMillis(t *testing.T) {
	if got := dateFromMillis(0); got != "" {
		t.Errorf("zero timestamp => %q, want empty", got)
	}
	got := dateFromMillis(1709290000000)
	if !strings.HasPrefix(got, "2024.03.") {
		t.Errorf("date = %q", got)
	}
}
