package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/modelpanel/cmd/modelpanel/internal/tui"
	"github.com/germanamz/modelpanel/pkg/catalog"
	"github.com/germanamz/modelpanel/pkg/modelconfig"
	"github.com/germanamz/modelpanel/pkg/panel"
	"github.com/rs/zerolog"
)

// app holds everything a command needs: the panel and the configuration it
// started from.
type app struct {
	panel    *panel.Panel
	initial  modelconfig.ModelConfig
	log      zerolog.Logger
	closeLog func() error
}

func setup(o options) (*app, error) {
	if err := loadDotEnv(o.envFile); err != nil {
		return nil, err
	}

	log, closeLog, err := newLogger(o.logPath, o.logLevel)
	if err != nil {
		return nil, err
	}

	models := catalog.DefaultModels
	if o.catalogPath != "" {
		if models, err = catalog.LoadFile(o.catalogPath); err != nil {
			_ = closeLog()
			return nil, err
		}
	}

	cfg := modelconfig.Default()
	if o.configPath != "" {
		if cfg, err = modelconfig.LoadFile(o.configPath); err != nil {
			_ = closeLog()
			return nil, err
		}
	}

	p := panel.New(models, modelconfig.NewMemory(cfg), panel.WithLogger(log))

	log.Info().
		Int("models", len(models)).
		Stringer("primary", cfg.Selection(modelconfig.Primary)).
		Msg("panel ready")

	return &app{
		panel:    p,
		initial:  p.Config(),
		log:      log,
		closeLog: closeLog,
	}, nil
}

func (a *app) close() {
	_ = a.closeLog()
}

// runPanel runs the interactive panel, then prints the final config and what
// changed.
func runPanel(o options) error {
	a, err := setup(o)
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := tea.NewProgram(tui.New(a.panel), tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	return printResult(a)
}

func printResult(a *app) error {
	final := a.panel.Config()

	data, err := final.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))

	diff, err := configDiff(a.initial, final)
	if err != nil {
		return err
	}
	if diff != "" {
		fmt.Println()
		fmt.Print(diff)
	}

	return nil
}
