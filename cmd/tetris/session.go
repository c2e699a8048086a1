package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/audio"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// session holds what every game started from the CLI shares.
type session struct {
	cfg    core.RuntimeConfig
	logger *log.Logger
	audio  *audio.Engine
	close  func()
}

// newSession validates the game flags, applies them to the tetris package
// and opens the logger and sound device.
func newSession() (*session, error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	gameCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	tetris.SetLogger(logger)
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	tetris.SetStartMuted(flagMute)

	snd := audio.New(audio.Options{
		Enabled: gameCfg.Audio.Enabled,
		Volume:  gameCfg.Audio.Volume,
		Muted:   flagMute,
	})
	if err := snd.Err(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	} else if snd.Available() {
		logger.Debug("audio ready", "volume", gameCfg.Audio.Volume, "muted", flagMute)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		audio:  snd,
		close:  closeLog,
	}, nil
}
