package series

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Source serves snapshots for fixed generation parameters, consulting
// the cache before regenerating.
type Source struct {
	seed  int64
	days  int
	cache Cache
}

func NewSource(seed int64, days int, cache Cache) *Source {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Source{seed: seed, days: days, cache: cache}
}

// Snapshot returns the series ending at anchor's day. The bool reports
// whether the snapshot came from the cache.
func (s *Source) Snapshot(ctx context.Context, anchor time.Time) (Series, bool, error) {
	anchor = Midnight(anchor)
	key := fmt.Sprintf("series:%d:%d:%s", s.seed, s.days, anchor.Format("2006-01-02"))

	if raw, ok := s.cache.Get(ctx, key); ok {
		var snap Series
		if err := json.Unmarshal([]byte(raw), &snap); err == nil && len(snap.Points) == s.days {
			return snap, true, nil
		}
	}

	snap := Generate(s.seed, s.days, anchor)
	raw, err := json.Marshal(snap)
	if err != nil {
		return snap, false, err
	}
	// cache write is best-effort
	_ = s.cache.Set(ctx, key, string(raw))
	return snap, false, nil
}
