package source

import (
	"fmt"
	"log"
	"time"

	"autosuggest/internal/config"
)

// FromConfig builds the source described by cfg: a catalog, optionally
// behind simulated latency, optionally behind a cache.
func FromConfig(cfg config.SourceConfig) (Source, error) {
	entries := Builtin()
	if cfg.Path != "" {
		loaded, err := LoadFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		entries = loaded
	}

	mode := ModePrefix
	if cfg.Mode == config.SourceModeFuzzy {
		mode = ModeFuzzy
	}

	var src Source = NewCatalog(entries, mode)
	if cfg.Latency > 0 || cfg.Jitter > 0 {
		src = NewDelayed(src,
			time.Duration(cfg.Latency)*time.Millisecond,
			time.Duration(cfg.Jitter)*time.Millisecond)
	}
	if cfg.CacheSize > 0 {
		cached, err := NewCached(src, cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("source: %w", err)
		}
		src = cached
	}

	log.Printf("source: %d entries, mode %s, cache %d, latency %dms+%dms",
		len(entries), mode, cfg.CacheSize, cfg.Latency, cfg.Jitter)
	return src, nil
}
