package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContentYAML []byte

type navLink struct {
	Name    string `yaml:"name"`
	Section string `yaml:"section"`
}

type skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Icon  string `yaml:"icon"`
}

type project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Source      string   `yaml:"source"`
	Demo        string   `yaml:"demo"`
}

type timelineEntry struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
}

type contactInfo struct {
	Heading  string `yaml:"heading"`
	Blurb    string `yaml:"blurb"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
}

type siteContent struct {
	Brand      string          `yaml:"brand"`
	Tagline    string          `yaml:"tagline"`
	Headline   []string        `yaml:"headline"`
	Role       string          `yaml:"role"`
	Intro      string          `yaml:"intro"`
	Navigation []navLink       `yaml:"navigation"`
	Marquee    []string        `yaml:"marquee"`
	Skills     []skill         `yaml:"skills"`
	Projects   []project       `yaml:"projects"`
	Timeline   []timelineEntry `yaml:"timeline"`
	Contact    contactInfo     `yaml:"contact"`
	Footer     string          `yaml:"footer"`
}

var errEmptyContent = errors.New("content has no brand")

func parseContent(data []byte) (*siteContent, error) {
	var c siteContent
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if strings.TrimSpace(c.Brand) == "" {
		return nil, errEmptyContent
	}
	for i := range c.Skills {
		if c.Skills[i].Level < 0 {
			c.Skills[i].Level = 0
		}
		if c.Skills[i].Level > 100 {
			c.Skills[i].Level = 100
		}
	}
	return &c, nil
}

func defaultContent() *siteContent {
	c, err := parseContent(defaultContentYAML)
	if err != nil {
		// the embedded file is part of the build
		panic(err)
	}
	return c
}

// loadContent reads path, falling back to the embedded content when path is
// empty or unreadable. The error reports why the fallback happened.
func loadContent(path string) (*siteContent, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return defaultContent(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultContent(), fmt.Errorf("read content: %w", err)
	}
	c, err := parseContent(data)
	if err != nil {
		return defaultContent(), err
	}
	return c, nil
}

type contentReloadedMsg struct {
	content *siteContent
	err     error
}

// watchContent re-reads path whenever it is written and hands the result to
// send. It returns when ctx is done.
func watchContent(ctx context.Context, path string, send func(tea.Msg), logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content watcher: %w", err)
	}
	defer watcher.Close()

	// editors replace files on save, so watch the directory
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			c, err := loadContent(path)
			logger.Debug("content changed", zap.String("path", path), zap.Error(err))
			send(contentReloadedMsg{content: c, err: err})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("content watcher error", zap.Error(err))
		}
	}
}

func (c *siteContent) sectionIndex(id string) int {
	for i, link := range c.Navigation {
		if link.Section == id {
			return i
		}
	}
	return -1
}
