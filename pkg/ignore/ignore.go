// Package ignore matches document names against gitignore-style patterns.
package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FileName is the ignore file looked up in a manifest directory.
const FileName = ".manifestignore"

// Pattern encapsulates a compiled regular expression pattern,
// a negation flag, and metadata about the pattern's origin.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Pattern started with '!'.
	Line   string         // Original pattern line.
	LineNo int            // Line number in the source (1-based).
	Source string         // File the pattern came from, empty for inline patterns.
}

// GitIgnore represents a collection of ignore patterns.
type GitIgnore struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New initializes an empty GitIgnore. A nil logger disables logging.
func New(logger *zap.Logger) *GitIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitIgnore{logger: logger}
}

// Load compiles the given ignore files in order. Empty paths and files that
// do not exist are skipped.
func Load(logger *zap.Logger, paths ...string) (*GitIgnore, error) {
	gi := New(logger)
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := gi.CompileFile(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				gi.logger.Debug("Ignore file not found, skipping", zap.String("filePath", path))
				continue
			}
			return nil, err
		}
	}
	return gi, nil
}

// Len returns the number of compiled patterns.
func (gi *GitIgnore) Len() int {
	return len(gi.patterns)
}

// CompileLines compiles pattern lines that did not come from a file.
func (gi *GitIgnore) CompileLines(lines ...string) {
	gi.compile("", lines)
}

// CompileFile reads an ignore file and compiles its lines.
func (gi *GitIgnore) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	gi.compile(filepath.Base(path), lines)
	gi.logger.Debug("Compiled ignore file", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

func (gi *GitIgnore) compile(source string, lines []string) {
	for i, line := range lines {
		re, negate, err := parseLine(line)
		if err != nil {
			gi.logger.Warn("Invalid ignore pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if re == nil {
			continue
		}
		gi.patterns = append(gi.patterns, &Pattern{
			Regexp: re,
			Negate: negate,
			Line:   line,
			LineNo: i + 1,
			Source: source,
		})
	}
}

// Matches reports whether path is ignored. Directory paths end with '/'.
func (gi *GitIgnore) Matches(path string) bool {
	matches, _ := gi.MatchesWithPattern(path)
	return matches
}

// MatchesWithPattern reports whether path is ignored and returns the last
// pattern that matched it, negated or not.
func (gi *GitIgnore) MatchesWithPattern(path string) (bool, *Pattern) {
	path = filepath.ToSlash(path)

	var matched *Pattern
	ignored := false
	for _, p := range gi.patterns {
		if p.Regexp.MatchString(path) {
			matched = p
			ignored = !p.Negate
		}
	}
	return ignored, matched
}

// parseLine turns one ignore line into an anchored regular expression.
// Blank lines and comments yield a nil expression.
func parseLine(line string) (*regexp.Regexp, bool, error) {
	pattern := strings.TrimSpace(line)
	if pattern == "" || strings.HasPrefix(pattern, "#") {
		return nil, false, nil
	}

	negate := false
	if strings.HasPrefix(pattern, "!") {
		negate = true
		pattern = pattern[1:]
	}
	if strings.HasPrefix(pattern, `\#`) || strings.HasPrefix(pattern, `\!`) {
		pattern = pattern[1:]
	}

	dirOnly := strings.HasSuffix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")

	prefix := "^(.*/)?"
	if strings.HasPrefix(pattern, "/") {
		prefix = "^"
		pattern = pattern[1:]
	}
	if pattern == "" {
		return nil, false, nil
	}

	suffix := "(/.*)?$"
	if dirOnly {
		suffix = "/.*$"
	}

	re, err := regexp.Compile(prefix + globToRegex(pattern) + suffix)
	if err != nil {
		return nil, false, err
	}
	return re, negate, nil
}

// globToRegex converts '*', '?' and '**' wildcards to regex equivalents and
// quotes everything else.
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		rest := glob[i:]
		switch {
		case strings.HasPrefix(rest, "**/"):
			b.WriteString("(.*/)?")
			i += 2
		case rest == "/**":
			b.WriteString("(/.*)?")
			i += 2
		case strings.HasPrefix(rest, "**"):
			b.WriteString(".*")
			i++
		case glob[i] == '*':
			b.WriteString("[^/]*")
		case glob[i] == '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	return b.String()
}
