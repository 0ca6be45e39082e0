package datasource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/yourusername/courtside-edge/internal/models"
)

// DatasetGame is one historical game in a slim backtest dataset: the inputs
// the model saw as of tip-off plus the actual result for settlement.
type DatasetGame struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	HomeTeam string  `json:"home_team"`
	AwayTeam string  `json:"away_team"`
	Spread   float64 `json:"spread"` // home line, negative = home favored
	HomeOdds float64 `json:"home_odds"`
	AwayOdds float64 `json:"away_odds"`

	Home TeamSections `json:"home"`
	Away TeamSections `json:"away"`

	HomeContext *models.MatchupContext `json:"home_context,omitempty"`
	AwayContext *models.MatchupContext `json:"away_context,omitempty"`

	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// ParsedDate returns the game date.
func (g *DatasetGame) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", g.Date)
}

// ActualMargin is the real final margin from the home perspective.
func (g *DatasetGame) ActualMargin() int {
	return g.HomeScore - g.AwayScore
}

// SeasonDataset holds one season's replayable games.
type SeasonDataset struct {
	Season        int           `json:"season"`
	LeagueAvgORtg float64       `json:"league_avg_ortg"`
	Games         []DatasetGame `json:"games"`
}

// LoadSeasonDataset reads season_<year>.json from dir, validates it and
// returns the games sorted by date.
func LoadSeasonDataset(dir string, season int) (*SeasonDataset, error) {
	path := filepath.Join(dir, fmt.Sprintf("season_%d.json", season))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	dataset := &SeasonDataset{}
	if err := json.Unmarshal(data, dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	if dataset.Season == 0 {
		dataset.Season = season
	}
	if dataset.Season != season {
		return nil, fmt.Errorf("dataset %s declares season %d", path, dataset.Season)
	}
	if dataset.LeagueAvgORtg <= 0 {
		return nil, fmt.Errorf("dataset %s has non-positive league_avg_ortg", path)
	}
	if len(dataset.Games) == 0 {
		return nil, fmt.Errorf("dataset %s contains no games", path)
	}

	for i := range dataset.Games {
		game := &dataset.Games[i]
		if _, err := game.ParsedDate(); err != nil {
			return nil, fmt.Errorf("dataset %s game %d has invalid date %q: %w", path, i, game.Date, err)
		}
		if game.HomeTeam == "" || game.AwayTeam == "" {
			return nil, fmt.Errorf("dataset %s game %d is missing a team name", path, i)
		}
		if game.HomeOdds <= 1.0 || game.AwayOdds <= 1.0 {
			return nil, fmt.Errorf("dataset %s game %d has invalid odds", path, i)
		}
	}

	sort.SliceStable(dataset.Games, func(i, j int) bool {
		return dataset.Games[i].Date < dataset.Games[j].Date
	})

	return dataset, nil
}
