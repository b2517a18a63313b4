package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDuration coalesces bursts of filesystem events (editors often
// emit several per save) into a single rebuild.
const debounceDuration = 500 * time.Millisecond

// runWatchCmd executes the watch command and returns an exit code.
func runWatchCmd(args []string, env *Environment) int {
	flags, rest, err := parseBuildFlags("watch", args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if len(rest) > 0 {
		fmt.Fprintf(env.Stderr, "Unexpected argument: %s\n", rest[0])
		printWatchUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runWatch(ctx, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runWatch builds once, then rebuilds whenever a tracked input changes.
// Build failures are reported but keep the watcher alive, so broken edits
// can be fixed without restarting.
func runWatch(ctx context.Context, flags *buildFlags, env *Environment) error {
	cfg, _, err := resolveConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories: inputs may not exist yet, and editors
	// that replace-on-save would otherwise detach the watch.
	tracked := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range cfg.InputPaths() {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Watching %d input file(s). Press Ctrl+C to stop.\n", len(tracked))
	}

	rebuild := func() {
		if err := runBuild(ctx, flags, env); err != nil {
			fmt.Fprintf(env.Stderr, "build failed: %v\n", err)
		}
	}
	rebuild()

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !tracked[abs] {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				if flags.common.verbose {
					fmt.Fprintf(env.Stdout, "change detected: %s\n", event.Name)
				}
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, rebuild)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watcher error: %v\n", err)

		case <-ctx.Done():
			if !flags.common.quiet {
				fmt.Fprintln(env.Stdout)
				fmt.Fprintln(env.Stdout, "Watch stopped")
			}
			return nil
		}
	}
}
