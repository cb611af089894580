package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/spf13/pflag"

	"github.com/goGPiKeys/keymaps"
	"github.com/goGPiKeys/remap"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

var debug bool

func setupLogging(path string) (*os.File, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	// Open or create the log file
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	logger = log.New(logFile, "", log.LstdFlags)

	return logFile, nil
}

func dprint(format string, v ...interface{}) {
	if debug {
		fmt.Printf(format, v...)
		logger.Printf(format, v...)
	}
}

type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
}

// run reads gamepad events until the context is cancelled or a read or
// write fails
func run(ctx context.Context, gamepad eventReader, remapper *remap.Remapper) error {
	for {
		event, err := gamepad.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read gamepad event: %w", err)
		}
		if event.Type != evdev.EV_SYN {
			dprint("Event: type=%d code=%d value=%d\n", event.Type, event.Code, event.Value)
		}

		mode := remapper.Mode()
		if err := remapper.Remap(event); err != nil {
			return err
		}
		if m := remapper.Mode(); m != mode {
			dprint("d-pad mode: %v -> %v\n", mode, m)
		}
	}
}

func main() {
	os.Exit(realMain())
}

// realMain returns the exit status so deferred cleanup runs before exiting
func realMain() int {
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	debug = cfg.Debug

	fmt.Println("Starting virtual keyboard service...")
	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		log.Printf("Failed to setup logging: %v", err)
		return 1
	}
	defer logFile.Close()

	km := keymaps.GetGPiKeyMapping()

	gamepad, err := connectGamepad(cfg.Device, cfg.Grab)
	if err != nil {
		logger.Printf("Error connecting to gamepad: %v", err)
		log.Printf("Error connecting to gamepad: %v", err)
		return 1
	}

	keyboard, err := createVirtualKeyboard(cfg.UInput, cfg.Name, km)
	if err != nil {
		releaseGamepad(gamepad, cfg.Grab)
		gamepad.File.Close()
		logger.Printf("Error creating virtual keyboard: %v", err)
		log.Printf("Error creating virtual keyboard: %v", err)
		return 1
	}
	defer keyboard.Close()

	// Set up graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		releaseGamepad(gamepad, cfg.Grab)
		// closing the device unblocks ReadOne
		gamepad.File.Close()
	}()

	remapper := remap.NewRemapper(km, &keyboardSink{kb: keyboard})

	fmt.Println("Virtual keyboard active. Press Ctrl+C to exit.")
	if err := run(ctx, gamepad, remapper); err != nil {
		logger.Printf("Stopped: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("\nShutting down...")
	return 0
}
