package locate

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"logview/internal/archive"
	"logview/internal/config"
)

// Newest returns the path of the newest qualifying archive in the
// configured log file directory, or "" when none qualifies. An archive
// qualifies when its name matches the archives glob and it contains at
// least one member matching contains_member. Newest means the greatest
// embedded timetag; ties go to the greater path.
func Newest(cfg *config.Config) (string, error) {
	pattern := filepath.Join(cfg.LogFileDirectory, cfg.Archives)
	candidates, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", pattern, err)
	}

	var bestPath, bestStamp string
	for _, candidate := range candidates {
		stamp, ok := inspect(cfg, candidate)
		if !ok {
			continue
		}
		if stamp > bestStamp || (stamp == bestStamp && candidate > bestPath) {
			bestStamp, bestPath = stamp, candidate
		}
	}
	return bestPath, nil
}

// inspect returns the archive's timetag when it qualifies. Unreadable
// candidates are diagnosed and skipped rather than failing the search.
func inspect(cfg *config.Config, path string) (string, bool) {
	a, err := archive.Open(path)
	if err != nil {
		log.Warn().Str("archive", path).Err(err).Msg("skipping unreadable archive")
		return "", false
	}
	defer a.Close()

	if len(a.Select([]string{cfg.ContainsMember})) == 0 {
		return "", false
	}
	return a.Timestamp(), true
}
