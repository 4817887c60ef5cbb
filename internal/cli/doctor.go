package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/routinely/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	problems := 0

	// Check 1: config file (warning only, defaults apply)
	if err := checkConfigFile(ctx); err != nil {
		fmt.Fprintf(out, "⚠ Config file: WARNING\n")
		fmt.Fprintf(out, "   %v\n", err)
	} else {
		fmt.Fprintf(out, "✓ Config file: OK\n")
	}

	// Check 2: timezone
	if err := checkTimezone(ctx); err != nil {
		fmt.Fprintf(out, "❌ Timezone: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		problems++
	} else {
		fmt.Fprintf(out, "✓ Timezone (%s): OK\n", ctx.Config.Timezone)
	}

	// Check 3: seed routines
	if n, err := checkRoutines(ctx); err != nil {
		fmt.Fprintf(out, "❌ Routines: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		problems++
	} else {
		fmt.Fprintf(out, "✓ Routines (%d): OK\n", n)
	}

	// Check 4: log directory
	if err := checkLogDir(ctx); err != nil {
		fmt.Fprintf(out, "❌ Log directory: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		problems++
	} else {
		fmt.Fprintf(out, "✓ Log directory: OK\n")
	}

	fmt.Fprintln(out)
	if problems > 0 {
		return fmt.Errorf("diagnostics found %d problem(s)", problems)
	}
	fmt.Fprintln(out, "All checks passed")
	return nil
}

func checkConfigFile(ctx *Context) error {
	if ctx.ConfigPath == "" {
		return fmt.Errorf("no config path set, using defaults")
	}
	info, err := os.Stat(ctx.ConfigPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s not found, using defaults", ctx.ConfigPath)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", ctx.ConfigPath)
	}
	return nil
}

func checkTimezone(ctx *Context) error {
	if !utils.ValidateTimezone(ctx.Config.Timezone) {
		return fmt.Errorf("unknown timezone %q", ctx.Config.Timezone)
	}
	return nil
}

func checkRoutines(ctx *Context) (int, error) {
	seeds, err := ctx.Config.Seeds()
	if err != nil {
		return 0, err
	}
	return len(seeds), nil
}

func checkLogDir(ctx *Context) error {
	dir := ctx.Config.LogDir
	if dir == "" {
		return fmt.Errorf("log directory is not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(filepath.Clean(name))
}
