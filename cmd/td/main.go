package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"

	todoist "github.com/nicolagi/todoist-launcher"
	"github.com/nicolagi/todoist-launcher/plugin"
)

func main() {
	settingsPath := flag.String("settings", "", "path to the settings file (default: settings.yaml in the config dir)")
	wireLogFile := flag.String("wirelog", "", "log all API requests and responses to this file")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	path := *settingsPath
	if path == "" {
		path = filepath.Join(defaultConfigDir(), "settings.yaml")
	}
	store := mustOpenStore(path)

	factory := plugin.ClientFactory(func(token string) (*todoist.Client, error) {
		return todoist.NewClient(token)
	})
	if *wireLogFile != "" {
		pathname := *wireLogFile
		factory = func(token string) (*todoist.Client, error) {
			return todoist.NewClient(token, todoist.WithWireLog(pathname))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	p := plugin.New(store, plugin.WithClientFactory(factory), plugin.WithOpenURL(browser.OpenURL))
	if err := serve(ctx, p, os.Stdin, os.Stdout); err != nil {
		log.WithField("cause", err).Fatal("Could not read from host")
	}
}

// defaultConfigDir returns $XDG_CONFIG_HOME/td, falling back to ~/.config/td.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "td")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "td"
	}
	return filepath.Join(home, ".config", "td")
}

func mustOpenStore(path string) plugin.Store {
	store, err := newViperStore(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"cause": err,
		}).Fatal("Could not open settings")
	}
	return store
}
