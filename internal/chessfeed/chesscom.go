package chessfeed

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const chessComBaseURL = "https://api.chess.com"

// ChessComClient pulls a player's recent games from the public Chess.com API:
// the monthly archive index first, then the PGN export of the newest two
// months. The window is fixed; two months is plenty for a "recent games"
// panel and keeps us polite toward their rate limits.
type ChessComClient struct {
	base   string
	client *Client
	logger *zap.Logger
}

func NewChessComClient(client *Client, baseURL string, logger *zap.Logger) *ChessComClient {
	if baseURL == "" {
		baseURL = chessComBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChessComClient{base: baseURL, client: client, logger: logger}
}

func (c *ChessComClient) Name() string { return string(PlatformChessCom) }

// Recent returns at most maxGames records, newest first. A single archive
// failing is skipped; only the archive index being unreachable fails the
// whole call.
func (c *ChessComClient) Recent(ctx context.Context, username string, maxGames int) ([]GameRecord, error) {
	var index struct {
		Archives []string `json:"archives"`
	}
	url := fmt.Sprintf("%s/pub/player/%s/games/archives", c.base, username)
	if err := c.client.getJSON(ctx, url, &index); err != nil {
		return nil, err
	}
	if len(index.Archives) == 0 {
		c.logger.Info("no chess.com archives for user", zap.String("username", username))
		return nil, nil
	}

	start := len(index.Archives) - 2
	if start < 0 {
		start = 0
	}

	var games []GameRecord
	for _, archiveURL := range index.Archives[start:] {
		body, err := c.client.getBytes(ctx, archiveURL+"/pgn", "")
		if err != nil {
			c.logger.Warn("chess.com archive fetch failed",
				zap.String("archive", archiveURL),
				zap.Error(err),
			)
			continue
		}
		games = append(games, ParsePGNGames(string(body))...)
	}

	sortByDateDesc(games)
	if maxGames > 0 && len(games) > maxGames {
		games = games[:maxGames]
	}
	return games, nil
}
