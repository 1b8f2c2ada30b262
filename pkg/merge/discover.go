package merge

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"manifestmerge/pkg/ignore"

	"go.uber.org/zap"
)

// DiscoverDocuments lists the entries of dir whose name ends with ext and is
// not ignored, sorted by name. Directories are listed too when their name
// matches; reading them fails later and is reported per document.
func DiscoverDocuments(dir, ext string, gi *ignore.GitIgnore, logger *zap.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("Failed to read manifest directory", zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to read manifest directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ext) {
			continue
		}

		matchPath := name
		if entry.IsDir() {
			matchPath += "/"
		}
		if gi != nil {
			if ignored, p := gi.MatchesWithPattern(matchPath); ignored {
				logger.Debug("Skipping ignored document",
					zap.String("document", name),
					zap.String("pattern", p.Line),
					zap.Int("lineNo", p.LineNo))
				continue
			}
		}

		names = append(names, name)
	}

	sort.Strings(names)
	logger.Debug("Discovered documents", zap.String("dir", dir), zap.Strings("documents", names))
	return names, nil
}
