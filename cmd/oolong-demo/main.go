// Command oolong-demo shows a menu page and a quit dialog built with oolong
//
//	j/k or arrows move, Enter activates, q opens the quit dialog
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/oolong/audio"
	"github.com/lixenwraith/oolong/config"
	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
	"github.com/lixenwraith/oolong/terminal/tcellterm"
)

var (
	configFlag   = flag.String("config", "", "TOML configuration file")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/oolong.log")
	soundFlag    = flag.Bool("sound", false, "Play selection and activation cues")
	backendFlag  = flag.String("backend", "ansi", "Terminal backend: ansi, tcell")
	failFastFlag = flag.Bool("fail-fast", false, "Abort on the first recorded error")
)

// backend is the terminal the demo runs on
type backend interface {
	Init() error
	Fini()
	Size() (columns, rows int)
	ReadKey() (terminal.Event, error)
	Write(p []byte) (int, error)
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mOOLONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag || cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "oolong-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	reporter, err := cfg.Reporter()
	if err != nil {
		return err
	}
	if *failFastFlag {
		reporter.Mode = fault.ModeFailFast
	}
	reporter.Logger = log.Default()

	term, err := newBackend(*backendFlag)
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	// Fail-fast must leave the terminal usable before exiting
	reporter.Abort = func(diagnostic string) {
		term.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mOOLONG FAULT: %s\x1b[0m\r\n", diagnostic)
		os.Exit(1)
	}

	cues := audio.NewCuePlayer()
	if *soundFlag {
		if err := cues.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer cues.Cleanup()
		}
	}

	a, err := newApp(cfg, term, term, reporter, cues)
	if err != nil {
		return err
	}
	return loop(a, term)
}

func newBackend(name string) (backend, error) {
	switch name {
	case "ansi", "":
		return terminal.New(), nil
	case "tcell":
		return tcellterm.New()
	}
	return nil, fault.Newf(fault.InvalidArgument, "oolong-demo", "unknown backend %q", name)
}

// loop renders, reads one key and applies it until the app quits or input ends
func loop(a *app, keys terminal.KeyReader) error {
	for {
		if err := a.render(); err != nil {
			log.Printf("render: %v", err)
			a.cues.Play(audio.CueError)
		}

		ev, err := keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		log.Printf("key: %v", ev)

		if a.handle(ev) {
			return nil
		}
	}
}
