package content

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// Project is one portfolio entry from the projects JSON file.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// ProjectStore reads the project list from a single JSON file on each call.
// A missing or unreadable file is an empty portfolio, not an error.
type ProjectStore struct {
	path   string
	logger *zap.Logger
}

func NewProjectStore(path string, logger *zap.Logger) *ProjectStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectStore{path: path, logger: logger}
}

func (s *ProjectStore) All() []Project {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("projects file unreadable", zap.String("path", s.path), zap.Error(err))
		}
		return nil
	}

	var projects []Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		s.logger.Warn("projects file malformed", zap.String("path", s.path), zap.Error(err))
		return nil
	}
	return projects
}

func (s *ProjectStore) Featured() []Project {
	var featured []Project
	for _, p := range s.All() {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}
