package session

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themeFile = "theme"
)

// Theme is the persisted display preference; a plain setter plus a two-way
// toggle. Names outside light/dark are stored as given, per the source
// behavior of the setter.
type Theme struct {
	mu   sync.RWMutex
	dir  string
	name string
}

func NewTheme(dir, fallback string) *Theme {
	t := &Theme{dir: dir, name: fallback}
	if data, err := ioutil.ReadFile(filepath.Join(dir, themeFile)); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			t.name = name
		}
	}
	return t
}

func (t *Theme) Name() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.name
}

func (t *Theme) Set(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.name = name
	_ = os.MkdirAll(t.dir, 0o700)
	_ = ioutil.WriteFile(filepath.Join(t.dir, themeFile), []byte(name), 0o600)
}

// Toggle flips between the two named themes; any other value becomes light.
func (t *Theme) Toggle() string {
	next := ThemeLight
	if t.Name() == ThemeLight {
		next = ThemeDark
	}
	t.Set(next)
	return next
}
