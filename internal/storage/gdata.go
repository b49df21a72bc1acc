package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// gdata object holding one property per high-score key.
const highScoreObject = "highscores"

// highScoreRecord is the YAML payload stored per key.
type highScoreRecord struct {
	Score     int       `yaml:"score"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// GdataStore keeps best scores in the platform's save-data directory.
// It is the lightweight alternative to the SQLite store when no score
// history is wanted.
type GdataStore struct {
	mu sync.Mutex
	m  *gdata.Manager
}

var _ core.HighScoreStore = (*GdataStore)(nil)

// OpenGdata opens the save-data area for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// HighScore returns the best score stored under key, or 0 when none is.
func (g *GdataStore) HighScore(key string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.m.ObjectPropExists(highScoreObject, key) {
		return 0, nil
	}
	data, err := g.m.LoadObjectProp(highScoreObject, key)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}

	var rec highScoreRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: cannot decode high score: %w", err)
	}
	return rec.Score, nil
}

// SetHighScore stores score under key, replacing the previous value.
func (g *GdataStore) SetHighScore(key string, score int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := yaml.Marshal(highScoreRecord{Score: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}
	if err := g.m.SaveObjectProp(highScoreObject, key, data); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}
