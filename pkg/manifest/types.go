// Package manifest parses markdown file manifests into path/content items.
//
// A manifest document is a sequence of level-2 sections. The heading line
// names the target path and the body holds its content, either as a single
// fenced block or as plain lines terminated by a `---` rule:
//
//	## cmd/tool/main.go
//	```go
//	package main
//	```
//
//	## README.md
//	Some *markdown* body.
//	---
package manifest

// Item is one file described by a manifest: a relative path plus the exact
// text to materialize there.
type Item struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// Valid reports whether both the path and the content are non-empty.
func (i Item) Valid() bool {
	return i.Path != "" && i.Content != ""
}
