package weapon

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Shopify/go-lua"

	apperrors "github.com/louisbranch/supervillain/internal/platform/errors"
)

// shootFunction is the global every weapon script must define.
const shootFunction = "shoot"

// Script is a MegaWeapon whose shot is computed by a Lua script.
//
// The script must define a global function shoot() that returns a string.
// Script state persists between shots, so scripts may keep counters or
// charge levels in local variables.
type Script struct {
	name string

	mu    sync.Mutex
	state *lua.State
}

// LoadScript compiles source and checks that it defines shoot().
func LoadScript(name, source string) (*Script, error) {
	state := newState()
	if err := lua.LoadBuffer(state, source, name, ""); err != nil {
		return nil, invalidScript(name, fmt.Errorf("load lua: %w", err))
	}
	return finishLoad(name, state)
}

// LoadScriptFile loads a weapon script from disk. The weapon is named after
// the file without its extension.
func LoadScriptFile(path string) (*Script, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	state := newState()
	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, invalidScript(name, fmt.Errorf("load lua: %w", err))
	}
	return finishLoad(name, state)
}

// Name returns the weapon's name.
func (s *Script) Name() string {
	return s.name
}

// Shoot calls the script's shoot() function.
//
// A script that raises an error or returns something other than a string
// misfires: Shoot panics with a WEAPON_MISFIRE domain error.
func (s *Script) Shoot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.state.SetTop(0)

	s.state.Global(shootFunction)
	if err := s.state.ProtectedCall(0, 1, 0); err != nil {
		panic(misfire(s.name, fmt.Errorf("run %s: %w", shootFunction, err)))
	}
	if s.state.TypeOf(-1) != lua.TypeString {
		panic(misfire(s.name, fmt.Errorf("%s returned %s, want string", shootFunction, lua.TypeNameOf(s.state, -1))))
	}
	shot, _ := s.state.ToString(-1)
	return shot
}

func newState() *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)
	return state
}

func finishLoad(name string, state *lua.State) (*Script, error) {
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return nil, invalidScript(name, fmt.Errorf("run lua: %w", err))
	}
	state.Global(shootFunction)
	defined := state.IsFunction(-1)
	state.Pop(1)
	if !defined {
		return nil, invalidScript(name, fmt.Errorf("script must define a global %s() function", shootFunction))
	}
	return &Script{name: name, state: state}, nil
}

func invalidScript(name string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeWeaponScriptInvalid,
		fmt.Sprintf("weapon script %s: %v", name, cause),
		map[string]string{"Weapon": name},
		cause,
	)
}

func misfire(name string, cause error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeWeaponMisfire,
		fmt.Sprintf("weapon %s misfired: %v", name, cause),
		map[string]string{"Weapon": name},
		cause,
	)
}
