package chessfeed

import (
	"regexp"
	"strings"
)

// tagLineRE matches a PGN header tag line like [White "Hikaru"]. The value
// group is greedy, so a quote embedded in the value is kept rather than
// truncating at the first closing quote.
var tagLineRE = regexp.MustCompile(`^\s*\[(\w+)\s+"(.*)"\]\s*$`)

// ParsePGNGames extracts game records from a raw PGN archive. The Chess.com
// export separates games with a double blank line, and that exact boundary
// (three consecutive newlines) is what we split on. Within a block only
// header tag lines are read; movetext and anything malformed is skipped.
// A block missing either player yields no record.
func ParsePGNGames(text string) []GameRecord {
	var games []GameRecord
	for _, block := range strings.Split(text, "\n\n\n") {
		if rec, ok := parsePGNBlock(block); ok {
			games = append(games, rec)
		}
	}
	return games
}

func parsePGNBlock(block string) (GameRecord, bool) {
	rec := GameRecord{
		Platform:    PlatformChessCom,
		Result:      Unknown,
		Date:        Unknown,
		TimeControl: Unknown,
		Opening:     Unknown,
	}

	var white, black string
	for _, line := range strings.Split(block, "\n") {
		m := tagLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, value := m[1], m[2]
		switch name {
		case "White":
			white = value
		case "Black":
			black = value
		case "Result":
			rec.Result = value
		case "Date":
			rec.Date = value
		case "TimeControl":
			rec.TimeControl = NormalizeTimeControl(value)
		case "ECO":
			rec.ECO = value
		case "Opening":
			rec.Opening = value
		case "Site":
			if url := liveGameURL(value); url != "" {
				rec.URL = url
			}
		}
	}

	if white == "" || black == "" {
		return GameRecord{}, false
	}
	rec.White = white
	rec.Black = black
	return rec, true
}

// liveGameURL rebuilds the canonical game link from a Site tag that points at
// a chess.com live game. The id is whatever follows "/live/", minus any query
// string.
func liveGameURL(site string) string {
	if !strings.Contains(strings.ToLower(site), "chess.com") {
		return ""
	}
	_, rest, ok := strings.Cut(site, "/live/")
	if !ok {
		return ""
	}
	id := rest
	if i := strings.IndexByte(id, '?'); i >= 0 {
		id = id[:i]
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	return "https://www.chess.com/game/live/" + id
}
