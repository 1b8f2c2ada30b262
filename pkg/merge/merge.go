package merge

import (
	"fmt"
	"path/filepath"
	"time"

	"manifestmerge/pkg/ignore"
	"manifestmerge/pkg/manifest"

	"go.uber.org/zap"
)

// Run merges the documents in args.ManifestDir and writes the result to
// args.Output in a single write. Documents that fail to load are reported and
// skipped; only an unusable directory, ignore file, format or output path
// aborts the run.
func Run(args Arguments, rep *Reporter, logger *zap.Logger) error {
	startTime := time.Now()

	format, err := ParseFormat(args.Format)
	if err != nil {
		return err
	}

	result, err := Merge(args, rep, logger)
	if err != nil {
		return err
	}

	data, err := Encode(result.Items, format)
	if err != nil {
		logger.Error("Failed to encode merged manifest", zap.Error(err))
		return err
	}

	if err := writeToFile(args.Output, data, 0644, logger); err != nil {
		return fmt.Errorf("failed to write merged manifest: %w", err)
	}

	rep.Merged(result.FilesLoaded, len(result.Items))
	logger.Debug("Merge completed",
		zap.String("outputFile", args.Output),
		zap.String("format", string(format)),
		zap.Int("filesLoaded", result.FilesLoaded),
		zap.Int("filesFailed", len(result.Failed)),
		zap.Int("totalItems", len(result.Items)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// Merge parses every discovered document in name order and concatenates
// their items. It does not write anything besides the reporter lines.
func Merge(args Arguments, rep *Reporter, logger *zap.Logger) (Result, error) {
	result := Result{Items: []manifest.Item{}}

	ext := args.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	gi, err := ignore.Load(logger, args.IgnoreFile, filepath.Join(args.ManifestDir, ignore.FileName))
	if err != nil {
		logger.Error("Failed to load ignore patterns", zap.Error(err))
		return result, fmt.Errorf("failed to load ignore patterns: %w", err)
	}

	names, err := DiscoverDocuments(args.ManifestDir, ext, gi, logger)
	if err != nil {
		return result, err
	}

	for _, name := range names {
		items, err := manifest.ParseFile(filepath.Join(args.ManifestDir, name))
		if err != nil {
			logger.Debug("Document failed to load", zap.String("document", name), zap.Error(err))
			rep.Warn(name, err)
			result.Failed = append(result.Failed, name)
			continue
		}

		logger.Debug("Parsed document", zap.String("document", name), zap.Int("items", len(items)))
		if len(items) == 0 {
			continue
		}

		result.Items = append(result.Items, items...)
		result.FilesLoaded++
		rep.Loaded(name, len(items))
	}

	return result, nil
}
