// Package docs embeds the user documentation topics of the stockdesk tool.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the markdown content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// AllTopics lists the available topics, readme first.
func AllTopics() []string {
	var names []string
	fs.WalkDir(topics, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		names = append(names, strings.TrimSuffix(path, ".md"))
		return nil
	})
	sort.Slice(names, func(i, j int) bool {
		if names[i] == "readme" {
			return true
		}
		if names[j] == "readme" {
			return false
		}
		return names[i] < names[j]
	})
	return names
}
