package weapon

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/louisbranch/supervillain/internal/platform/errors"
	"github.com/louisbranch/supervillain/internal/villain"
)

// Stock weapon names.
const (
	NameLaser     = "laser"
	NameFreezeRay = "freeze-ray"
	NameShrinkRay = "shrink-ray"
)

//go:embed scripts/*.lua
var embeddedScripts embed.FS

// Arsenal is a named collection of weapons. It is safe for concurrent use.
type Arsenal struct {
	mu      sync.RWMutex
	weapons map[string]villain.MegaWeapon
}

// NewArsenal returns an empty arsenal.
func NewArsenal() *Arsenal {
	return &Arsenal{weapons: map[string]villain.MegaWeapon{}}
}

// Stock returns an arsenal holding the built-in rays and every embedded
// weapon script.
func Stock() (*Arsenal, error) {
	a := NewArsenal()
	builtins := map[string]villain.MegaWeapon{
		NameLaser:     Laser{},
		NameFreezeRay: FreezeRay{},
		NameShrinkRay: ShrinkRay{},
	}
	for name, w := range builtins {
		if err := a.Register(name, w); err != nil {
			return nil, err
		}
	}
	if err := a.loadScripts(embeddedScripts, "scripts"); err != nil {
		return nil, err
	}
	return a, nil
}

// Register adds w under name. Names are case-insensitive and must be unique.
func (a *Arsenal) Register(name string, w villain.MegaWeapon) error {
	key := normalizeName(name)
	if key == "" {
		return fmt.Errorf("weapon name is required")
	}
	if w == nil {
		return fmt.Errorf("weapon %s is nil", key)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.weapons[key]; exists {
		return fmt.Errorf("weapon %s already registered", key)
	}
	a.weapons[key] = w
	return nil
}

// Lookup returns the weapon registered under name.
func (a *Arsenal) Lookup(name string) (villain.MegaWeapon, error) {
	key := normalizeName(name)
	a.mu.RLock()
	w, ok := a.weapons[key]
	a.mu.RUnlock()
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodeWeaponUnknown,
			fmt.Sprintf("unknown weapon %q", name),
			map[string]string{"Weapon": name},
		)
	}
	return w, nil
}

// Names returns the registered weapon names in sorted order.
func (a *Arsenal) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.weapons))
	for name := range a.weapons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *Arsenal) loadScripts(fsys fs.FS, dir string) error {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.lua"))
	if err != nil {
		return fmt.Errorf("glob weapon scripts: %w", err)
	}
	for _, p := range paths {
		source, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read weapon script %s: %w", p, err)
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		script, err := LoadScript(name, string(source))
		if err != nil {
			return err
		}
		if err := a.Register(name, script); err != nil {
			return err
		}
	}
	return nil
}

// Logged wraps w so every shot is written to logger before being returned.
func Logged(name string, w villain.MegaWeapon, logger *log.Logger) villain.MegaWeapon {
	if logger == nil {
		return w
	}
	return villain.WeaponFunc(func() string {
		shot := w.Shoot()
		logger.Printf("weapon %s fired: %s", name, shot)
		return shot
	})
}

// CanonicalName returns the form of name the arsenal registers and looks
// weapons up under.
func CanonicalName(name string) string {
	return normalizeName(name)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
