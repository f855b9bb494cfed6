package memory

import (
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/dto"

	"github.com/patrickmn/go-cache"
)

const dashboardStatsKey = "dashboard_stats"

// StatsCache keeps admin dashboard aggregates warm for a short window so
// repeated dashboard loads do not re-run the count queries.
type StatsCache struct {
	cache *cache.Cache
}

func NewStatsCache(ttl time.Duration) *StatsCache {
	c := cache.New(ttl, 2*ttl)
	return &StatsCache{
		cache: c,
	}
}

func (s *StatsCache) Save(stats *dto.DashboardStatsResponse) {
	s.cache.Set(dashboardStatsKey, stats, cache.DefaultExpiration)
}

func (s *StatsCache) Get() (*dto.DashboardStatsResponse, bool) {
	if x, found := s.cache.Get(dashboardStatsKey); found {
		return x.(*dto.DashboardStatsResponse), true
	}
	return nil, false
}

func (s *StatsCache) Invalidate() {
	s.cache.Delete(dashboardStatsKey)
}
