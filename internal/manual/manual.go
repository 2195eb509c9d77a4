// SPDX-License-Identifier: MPL-2.0

// Package manual holds the embedded textkit manual pages.
package manual

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const pageExt = ".md"

var (
	//go:embed pages/*.md
	pages embed.FS

	// ErrUnknownTopic is the sentinel wrapped by UnknownTopicError.
	ErrUnknownTopic = errors.New("unknown manual topic")

	render = glamour.Render
)

// UnknownTopicError names a topic without a page.
type UnknownTopicError struct {
	Topic string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("no manual entry for %q (available: %s)", e.Topic, strings.Join(Topics(), ", "))
}

func (e *UnknownTopicError) Unwrap() error {
	return ErrUnknownTopic
}

// Topics returns every topic with a page, sorted.
func Topics() []string {
	entries, err := fs.ReadDir(pages, "pages")
	if err != nil {
		return nil
	}

	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), pageExt); ok && !e.IsDir() {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics
}

// Source returns the raw markdown of a topic.
func Source(topic string) (string, error) {
	if !slices.Contains(Topics(), topic) {
		return "", &UnknownTopicError{Topic: topic}
	}
	data, err := pages.ReadFile(path.Join("pages", topic+pageExt))
	if err != nil {
		return "", fmt.Errorf("reading manual page %s: %w", topic, err)
	}
	return string(data), nil
}

// Render returns a topic rendered for the terminal with the given glamour
// style ("dark", "light", "notty", ...).
func Render(topic, style string) (string, error) {
	md, err := Source(topic)
	if err != nil {
		return "", err
	}
	out, err := render(md, style)
	if err != nil {
		return "", fmt.Errorf("rendering manual page %s: %w", topic, err)
	}
	return out, nil
}
