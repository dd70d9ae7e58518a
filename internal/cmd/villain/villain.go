// Package villain implements the villain command: build a villain from a
// name, fire a weapon and wait for the plan.
package villain

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/supervillain/internal/platform/cmd"
	apperrors "github.com/louisbranch/supervillain/internal/platform/errors"
	"github.com/louisbranch/supervillain/internal/villain"
	"github.com/louisbranch/supervillain/internal/weapon"
)

// Config holds villain command configuration.
type Config struct {
	Name         string        `env:"SUPERVILLAIN_NAME"          envDefault:"Anas Elgarhy"`
	Rename       string        `env:"SUPERVILLAIN_RENAME"`
	Weapon       string        `env:"SUPERVILLAIN_WEAPON"        envDefault:"laser"`
	WeaponScript string        `env:"SUPERVILLAIN_WEAPON_SCRIPT"`
	PlanDelay    time.Duration `env:"SUPERVILLAIN_PLAN_DELAY"    envDefault:"1s"`
	Timeout      time.Duration `env:"SUPERVILLAIN_TIMEOUT"`
	Locale       string        `env:"SUPERVILLAIN_LOCALE"        envDefault:"en-US"`
	ListWeapons  bool
}

// ParseConfig loads env defaults and then parses flags into a Config.
// Flags bind to the Config fields directly, so only flags present in args
// override the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Name, "name", cfg.Name, `villain full name ("First Last")`)
	fs.StringVar(&cfg.Rename, "rename", cfg.Rename, "rename the villain before attacking")
	fs.StringVar(&cfg.Weapon, "weapon", cfg.Weapon, "weapon to fire")
	fs.StringVar(&cfg.WeaponScript, "weapon-script", cfg.WeaponScript, "path to a Lua weapon script to add to the arsenal")
	fs.DurationVar(&cfg.PlanDelay, "plan-delay", cfg.PlanDelay, "how long plotting takes")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "give up on the plan after this long (0 waits forever)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	fs.BoolVar(&cfg.ListWeapons, "list-weapons", cfg.ListWeapons, "list available weapons and exit")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the villain command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	arsenal, err := loadArsenal(cfg.WeaponScript)
	if err != nil {
		return err
	}
	if cfg.ListWeapons {
		for _, name := range arsenal.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	v, err := villain.FromName(cfg.Name)
	if err != nil {
		return fmt.Errorf("build villain: %w", err)
	}
	fmt.Fprintf(out, "Villain: %s\n", v.FullName())

	if strings.TrimSpace(cfg.Rename) != "" {
		if err := v.SetFullName(cfg.Rename); err != nil {
			return fmt.Errorf("rename villain: %w", err)
		}
		fmt.Fprintf(out, "Renamed: %s\n", v.FullName())
	}

	w, err := arsenal.Lookup(cfg.Weapon)
	if err != nil {
		return fmt.Errorf("select weapon: %w", err)
	}
	if err := attack(v, weapon.Logged(weapon.CanonicalName(cfg.Weapon), w, logger)); err != nil {
		return fmt.Errorf("attack: %w", err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	planner := villain.NewPlanner(villain.WithDelay(cfg.PlanDelay))
	logger.Printf("%s is plotting for %s", v.FullName(), planner.Delay())
	plan, err := planner.Plan(ctx, v)
	if err != nil {
		return fmt.Errorf("come up with plan: %w", err)
	}
	fmt.Fprintf(out, "Plan: %s\n", plan)
	return nil
}

func loadArsenal(scriptPath string) (*weapon.Arsenal, error) {
	arsenal, err := weapon.Stock()
	if err != nil {
		return nil, fmt.Errorf("load arsenal: %w", err)
	}
	if strings.TrimSpace(scriptPath) == "" {
		return arsenal, nil
	}
	script, err := weapon.LoadScriptFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("load weapon script: %w", err)
	}
	if err := arsenal.Register(script.Name(), script); err != nil {
		return nil, fmt.Errorf("register weapon script: %w", err)
	}
	return arsenal, nil
}

// attack fires w and turns a domain-error misfire into a returned error.
// Any other panic is not ours to handle.
func attack(v villain.SuperVillain, w villain.MegaWeapon) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var domainErr *apperrors.Error
		if rErr, ok := r.(error); ok && errors.As(rErr, &domainErr) {
			err = rErr
			return
		}
		panic(r)
	}()
	v.Attack(w)
	return nil
}
