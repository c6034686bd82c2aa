package chessfeed

import (
	"errors"
	"sort"
)

// Platform identifies which service a game was played on.
type Platform string

const (
	PlatformChessCom Platform = "Chess.com"
	PlatformLichess  Platform = "Lichess"
)

// Unknown is the placeholder carried by optional fields that were absent
// upstream. Consumers get the literal string instead of an omitted field.
const Unknown = "Unknown"

// GameRecord is the unified shape both fetchers normalize into. Date stays a
// "YYYY.MM.DD" string: zero-padded and fixed-width, so lexicographic order is
// chronological order. Do not parse it into a time type and re-format.
type GameRecord struct {
	Platform    Platform `json:"platform"`
	White       string   `json:"white"`
	Black       string   `json:"black"`
	Result      string   `json:"result"`
	Date        string   `json:"date"`
	TimeControl string   `json:"time_control"`
	Opening     string   `json:"opening"`
	ECO         string   `json:"eco,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Classified fetch failures. The aggregator logs the reason and moves on;
// none of these ever cross the cache's public boundary.
var (
	ErrBadStatus = errors.New("unexpected upstream status")
	ErrDecode    = errors.New("malformed upstream payload")
)

func sortByDateDesc(games []GameRecord) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date > games[j].Date
	})
}
