package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/tui"
	"vanta/internal/config"
	"vanta/internal/session"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file (default $"+config.EnvPath+" or ./"+config.LocalPath+")")
	initFlag := flag.Bool("init", false, "write an example config to ./"+config.LocalPath+" and exit")
	flag.Parse()

	if *initFlag {
		if err := config.CreateConfigFile(config.LocalPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s\n", config.LocalPath)
		return
	}

	cfg, err := config.Resolve(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to the configured file
	w, closer, err := cfg.OpenLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger := config.NewLogger(w, cfg.Level())
	ws := session.New(cfg, logger)

	app := tui.NewApp(context.Background(), ws, tui.WithLogger(logger.WithPrefix("tui")))

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
