// Package merge discovers manifest documents in a directory, parses them in
// filename order and writes the combined item list as one document.
package merge

import "manifestmerge/pkg/manifest"

// DefaultExtension is the suffix a file name needs to be treated as a manifest document.
const DefaultExtension = ".md"

// Arguments holds the options for a merge run.
type Arguments struct {
	ManifestDir string // Directory holding the manifest documents.
	Output      string // Destination of the merged document, created or truncated.
	Extension   string // Document name suffix; DefaultExtension when empty.
	Format      string // Output format name, see ParseFormat.
	IgnoreFile  string // Optional ignore file applied before the directory's own .manifestignore.
}

// Result accumulates the outcome of a merge pass.
type Result struct {
	Items       []manifest.Item // Items in document order, then appearance order.
	FilesLoaded int             // Documents that contributed at least one item.
	Failed      []string        // Documents that could not be read or parsed.
}
