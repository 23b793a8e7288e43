package stopwords

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed lists/*.txt
var embedded embed.FS

// Set answers case-insensitive stopword membership for a language.
type Set interface {
	Contains(word, language string) bool
}

var aliases = map[string]string{
	"en": "english",
}

// Registry holds stopword lists keyed by language name. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	lists map[string]map[string]struct{}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the process-wide registry, loading the embedded lists on
// first use.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry()
	})
	return defaultRegistry, defaultErr
}

// NewRegistry builds a registry from the embedded lists.
func NewRegistry() (*Registry, error) {
	r := &Registry{lists: make(map[string]map[string]struct{})}

	entries, err := embedded.ReadDir("lists")
	if err != nil {
		return nil, fmt.Errorf("read embedded lists: %w", err)
	}
	for _, e := range entries {
		f, err := embedded.Open(path.Join("lists", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", e.Name(), err)
		}
		words, err := readList(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		r.Add(strings.TrimSuffix(e.Name(), ".txt"), words...)
	}
	return r, nil
}

// Contains reports whether word is a stopword for language. Unknown languages
// have no stopwords.
func (r *Registry) Contains(word, language string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.lists[canonical(language)]
	if !ok {
		return false
	}
	_, ok = list[strings.ToLower(word)]
	return ok
}

// Add merges words into the list for language.
func (r *Registry) Add(language string, words ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lang := canonical(language)
	list, ok := r.lists[lang]
	if !ok {
		list = make(map[string]struct{}, len(words))
		r.lists[lang] = list
	}
	for _, w := range words {
		list[strings.ToLower(w)] = struct{}{}
	}
}

// LoadFile merges a newline-delimited word list into language. Blank lines and
// lines starting with # are ignored.
func (r *Registry) LoadFile(language, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()

	words, err := readList(f)
	if err != nil {
		return fmt.Errorf("read stopwords file: %w", err)
	}
	r.Add(language, words...)
	return nil
}

// Languages lists the loaded languages in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.lists))
	for l := range r.lists {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

func canonical(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if a, ok := aliases[lang]; ok {
		return a
	}
	return lang
}

func readList(rd io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, sc.Err()
}
