package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside-edge/internal/metrics"
	"github.com/yourusername/courtside-edge/internal/models"
)

// HTTPProviderConfig configures the remote stats provider.
type HTTPProviderConfig struct {
	BaseURL    string
	APIKey     string
	CacheTTL   time.Duration
	CacheSweep time.Duration
	Client     HTTPClientConfig
}

// HTTPProvider implements Provider against the historical stats service.
// Responses are cached so that analyzing both sides of a matchup, or the
// same team on consecutive requests, does not refetch.
type HTTPProvider struct {
	cfg    HTTPProviderConfig
	client *RateLimitedHTTPClient
	cache  *gocache.Cache
	log    *logrus.Entry
}

// NewHTTPProvider creates a provider over the rate-limited client.
func NewHTTPProvider(cfg HTTPProviderConfig, baseLogger *logrus.Logger) *HTTPProvider {
	return &HTTPProvider{
		cfg:    cfg,
		client: NewRateLimitedHTTPClient(cfg.Client, baseLogger),
		cache:  gocache.New(cfg.CacheTTL, cfg.CacheSweep),
		log:    baseLogger.WithField("component", "datasource"),
	}
}

// TeamSections returns the season and last-10 stat lines for a team.
func (p *HTTPProvider) TeamSections(ctx context.Context, team string, season int) (*TeamSections, error) {
	key := fmt.Sprintf("sections:%d:%s", season, team)
	if cached, ok := p.cache.Get(key); ok {
		return cached.(*TeamSections), nil
	}

	url := fmt.Sprintf("%s/v1/teams/%s/stats?season=%d", p.cfg.BaseURL, team, season)
	sections := &TeamSections{}
	if err := p.getJSON(ctx, url, sections); err != nil {
		return nil, fmt.Errorf("failed to fetch team sections for %s: %w", team, err)
	}

	p.cache.SetDefault(key, sections)
	return sections, nil
}

// MatchupContext returns the optional contextual payloads for a team.
func (p *HTTPProvider) MatchupContext(ctx context.Context, team, opponent string, season int) (*models.MatchupContext, error) {
	key := fmt.Sprintf("context:%d:%s:%s", season, team, opponent)
	if cached, ok := p.cache.Get(key); ok {
		return cached.(*models.MatchupContext), nil
	}

	url := fmt.Sprintf("%s/v1/teams/%s/context?season=%d&opponent=%s", p.cfg.BaseURL, team, season, opponent)
	matchupCtx := &models.MatchupContext{}
	if err := p.getJSON(ctx, url, matchupCtx); err != nil {
		return nil, fmt.Errorf("failed to fetch matchup context for %s: %w", team, err)
	}

	p.cache.SetDefault(key, matchupCtx)
	return matchupCtx, nil
}

// LeagueAverageORtg returns the league-wide offensive rating baseline.
func (p *HTTPProvider) LeagueAverageORtg(ctx context.Context, season int) (float64, error) {
	key := fmt.Sprintf("league_avg:%d", season)
	if cached, ok := p.cache.Get(key); ok {
		return cached.(float64), nil
	}

	url := fmt.Sprintf("%s/v1/league/averages?season=%d", p.cfg.BaseURL, season)
	var payload struct {
		OffensiveRating float64 `json:"offensive_rating"`
	}
	if err := p.getJSON(ctx, url, &payload); err != nil {
		return 0, fmt.Errorf("failed to fetch league averages: %w", err)
	}
	if payload.OffensiveRating <= 0 {
		return 0, fmt.Errorf("league average offensive rating %f is not positive", payload.OffensiveRating)
	}

	p.cache.SetDefault(key, payload.OffensiveRating)
	return payload.OffensiveRating, nil
}

// Close releases the underlying HTTP client resources.
func (p *HTTPProvider) Close() error {
	return p.client.Close()
}

func (p *HTTPProvider) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if p.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		metrics.RecordDatasourceRequest("error")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordDatasourceRequest("error")
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordDatasourceRequest("error")
		return fmt.Errorf("failed to decode response: %w", err)
	}
	metrics.RecordDatasourceRequest("success")
	return nil
}
