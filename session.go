package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"growify/pkg/engine/input"
	"growify/pkg/game/city"
	"growify/pkg/game/devtools"
	"growify/pkg/game/director"
	"growify/pkg/game/i18n"
	"growify/pkg/game/logging"
	"growify/pkg/game/renderer"
	"growify/pkg/game/renderer/tui"
	"growify/pkg/game/sim"
)

// sessionConfig selects the scenario and ambient settings for a session
type sessionConfig struct {
	Scenario string
	LogFile  string
	LogLevel string
	Lang     string
	Out      io.Writer
}

// session is a loaded city with the Growify director attached
type session struct {
	city     *sim.City
	app      *sim.App
	director *director.Director
	view     renderer.Renderer
	text     *i18n.Catalog
	logger   *logging.Logger
}

// newSession loads the scenario, starts logging and brings the city up
// the way the host would: app init, director subscription, city init.
func newSession(cfg sessionConfig) (*session, error) {
	scenario, err := sim.LoadScenario(cfg.Scenario)
	if err != nil {
		return nil, err
	}

	c, err := sim.NewCity(scenario)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Header: director.Header(),
	})
	if err != nil {
		return nil, err
	}

	text, err := i18n.Load(cfg.Lang)
	if err != nil {
		logger.Close()
		return nil, err
	}

	var r renderer.Renderer = tui.New(cfg.Out, text)
	r.Init()

	app := sim.NewApp(c)
	d := director.New(director.Config{
		App:    app,
		Dialog: r,
		Text:   text,
		Logger: logger.Logger,
		Names:  c,
	})
	if err := attachDirector(d, app.MessageServer()); err != nil {
		logger.Close()
		return nil, err
	}
	app.InitCity()

	return &session{
		city:     c,
		app:      app,
		director: d,
		view:     r,
		text:     text,
		logger:   logger,
	}, nil
}

// attachDirector subscribes d to the city lifecycle messages
func attachDirector(d *director.Director, server city.MessageServer) error {
	if !d.PostAppInit(server) {
		return errors.New("subscribing the Growify director to city messages failed")
	}
	return nil
}

// Handle acts on one console intent. Returns false when the session should end.
func (s *session) Handle(in input.Intent) bool {
	switch in.Action {
	case input.ActionQuit:
		return false
	case input.ActionMap:
		s.view.RenderZoneMap(s.city.Grid())
	case input.ActionHelp:
		s.view.ShowDialog(s.text.Get("USAGE"), s.text.Get("CAPTION"))
	case input.ActionCheat:
		if !s.app.SubmitCheat(in.Text) {
			s.view.ShowDialog(fmt.Sprintf(s.text.Get("UNKNOWN_CHEAT"), in.Text), s.text.Get("CAPTION"))
		}
	}
	return true
}

// Dump writes the zone map dump to path. An empty path does nothing.
func (s *session) Dump(path string) error {
	if path == "" {
		return nil
	}
	written, err := devtools.DumpCityToFile(s.city, path)
	if err != nil {
		return err
	}
	s.logger.Info("Wrote zone map dump", zap.String("path", written))
	return nil
}

// Close shuts the city down and flushes the log
func (s *session) Close() error {
	s.app.ShutdownCity()
	return s.logger.Close()
}
