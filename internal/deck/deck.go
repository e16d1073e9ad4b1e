package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"slidex/internal/domain"
)

// ErrContainerNotFound is returned when the deck target does not exist
var ErrContainerNotFound = errors.New("container not found")

// Separator is the line that splits a markdown file into slides
const Separator = "---"

// Deck is a resolved container: the ordered content nodes of a carousel
type Deck struct {
	Source string
	Slides []domain.Slide
}

// slideExtensions are the files picked up from a directory container
var slideExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Open resolves target into a deck. A file is split at separator lines, a
// directory contributes one slide per direct child file.
func Open(target string) (*Deck, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("%w: empty target", ErrContainerNotFound)
	}

	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, target)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", target, err)
	}

	if info.IsDir() {
		return openDir(target)
	}
	return openFile(target)
}

func openFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return &Deck{
		Source: path,
		Slides: Parse(string(data), path),
	}, nil
}

func openDir(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !slideExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	d := &Deck{Source: dir}
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %s: %w", name, err)
		}
		body := strings.TrimSpace(string(data))
		d.Slides = append(d.Slides, domain.Slide{
			ID:     strings.TrimSuffix(name, filepath.Ext(name)),
			Title:  titleOf(body),
			Body:   body,
			Source: path,
		})
	}
	return d, nil
}

// Parse splits markdown into slides. Empty chunks are dropped.
func Parse(content, source string) []domain.Slide {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if base == "" || base == "." {
		base = "slide"
	}

	var slides []domain.Slide
	var chunk strings.Builder
	flush := func() {
		body := strings.TrimSpace(chunk.String())
		chunk.Reset()
		if body == "" {
			return
		}
		slides = append(slides, domain.Slide{
			ID:     fmt.Sprintf("%s-%d", base, len(slides)+1),
			Title:  titleOf(body),
			Body:   body,
			Source: source,
		})
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimRight(line, " \t\r") == Separator {
			flush()
			continue
		}
		chunk.WriteString(line)
		chunk.WriteString("\n")
	}
	flush()

	return slides
}

// titleOf returns the text of the first top level heading
func titleOf(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
