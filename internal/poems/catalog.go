// ABOUTME: Catalog is the read-only name -> text lookup over the bundled writings
// ABOUTME: Loads *.txt files plus optional catalog.yaml metadata from any fs.FS

package poems

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

const (
	metadataFile   = "catalog.yaml"
	textExt        = ".txt"
	maxSuggestions = 3
)

//go:embed assets
var assets embed.FS

// Poem is one bundled writing.
type Poem struct {
	Name   string
	Title  string
	Author string
	Text   string
}

// Catalog holds poems sorted by case-folded name.
type Catalog struct {
	poems []Poem
}

type metadata struct {
	Poems []struct {
		Name   string `yaml:"name"`
		Title  string `yaml:"title"`
		Author string `yaml:"author"`
	} `yaml:"poems"`
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, fmt.Errorf("opening bundled writings: %w", err)
	}
	return Load(sub)
})

// Default returns the catalog of writings embedded in the binary.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Load reads every *.txt file at the root of fsys. Titles and authors come
// from catalog.yaml when present; a missing title defaults to the name.
func Load(fsys fs.FS) (*Catalog, error) {
	meta, err := readMetadata(fsys)
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(fsys, "*"+textExt)
	if err != nil {
		return nil, fmt.Errorf("listing writings: %w", err)
	}

	poems := make([]Poem, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		name := strings.TrimSuffix(path.Base(file), textExt)
		p := Poem{Name: name, Title: name, Text: Normalize(string(data))}
		if m, ok := meta[name]; ok {
			if m.Title != "" {
				p.Title = m.Title
			}
			p.Author = m.Author
		}
		poems = append(poems, p)
	}
	return newCatalog(poems), nil
}

// FromMap builds a catalog from literal name -> text pairs.
func FromMap(texts map[string]string) *Catalog {
	poems := make([]Poem, 0, len(texts))
	for name, text := range texts {
		poems = append(poems, Poem{Name: name, Title: name, Text: Normalize(text)})
	}
	return newCatalog(poems)
}

func newCatalog(poems []Poem) *Catalog {
	sort.SliceStable(poems, func(i, j int) bool {
		fi, fj := fold(poems[i].Name), fold(poems[j].Name)
		if fi != fj {
			return fi < fj
		}
		return poems[i].Name < poems[j].Name
	})
	return &Catalog{poems: poems}
}

func readMetadata(fsys fs.FS) (map[string]Poem, error) {
	data, err := fs.ReadFile(fsys, metadataFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", metadataFile, err)
	}

	var m metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", metadataFile, err)
	}

	out := make(map[string]Poem, len(m.Poems))
	for _, e := range m.Poems {
		out[e.Name] = Poem{Name: e.Name, Title: e.Title, Author: e.Author}
	}
	return out, nil
}

// Len returns the number of poems.
func (c *Catalog) Len() int {
	return len(c.poems)
}

// Names returns poem names in case-insensitive order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.poems))
	for i, p := range c.poems {
		names[i] = p.Name
	}
	return names
}

// Poems returns a copy of every poem in Names order.
func (c *Catalog) Poems() []Poem {
	out := make([]Poem, len(c.poems))
	copy(out, c.poems)
	return out
}

// Lookup parses raw as a Name and resolves it.
func (c *Catalog) Lookup(raw string) (Poem, error) {
	name, err := ParseName(raw)
	if err != nil {
		return Poem{}, err
	}
	return c.Get(name)
}

// Get resolves a parsed name. An exact match wins over a case-insensitive one.
func (c *Catalog) Get(name Name) (Poem, error) {
	if name.IsZero() {
		return Poem{}, ErrEmptyName
	}
	want := name.String()
	for _, p := range c.poems {
		if p.Name == want {
			return p, nil
		}
	}
	folded := fold(want)
	for _, p := range c.poems {
		if fold(p.Name) == folded {
			return p, nil
		}
	}
	return Poem{}, &NotFoundError{Name: want, Suggestions: c.Suggest(want)}
}

// Suggest returns up to three names that fuzzily match name, best first.
func (c *Catalog) Suggest(name string) []string {
	folded := make([]string, len(c.poems))
	for i, p := range c.poems {
		folded[i] = fold(p.Name)
	}

	matches := fuzzy.Find(fold(strings.TrimSpace(name)), folded)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.poems[m.Index].Name)
	}
	return out
}

// Filter returns the poems whose names match a case-insensitive glob pattern.
// An empty pattern matches everything.
func (c *Catalog) Filter(pattern string) ([]Poem, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return c.Poems(), nil
	}

	g, err := glob.Compile(fold(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var out []Poem
	for _, p := range c.poems {
		if g.Match(fold(p.Name)) {
			out = append(out, p)
		}
	}
	return out, nil
}
