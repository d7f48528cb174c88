package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nicolagi/todoist-launcher/plugin"
)

// viperStore is a plugin.Store backed by a YAML settings file. A missing file is not an error, it's just an
// empty store; the file springs into existence on the first Set.
type viperStore struct {
	v    *viper.Viper
	path string
}

func newViperStore(path string) (*viperStore, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault(plugin.KeyMaxTasks, "10")
	v.SetDefault(plugin.KeyProject, "inbox")
	v.SetDefault(plugin.KeyShowTodayOnly, "true")
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return &viperStore{v: v, path: path}, nil
}

// Get implements plugin.Store.
func (s *viperStore) Get(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// Set implements plugin.Store. The file holds the API token, hence the restrictive permissions.
func (s *viperStore) Set(key, value string) error {
	s.v.Set(key, value)
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return err
	}
	return os.Chmod(s.path, 0600)
}
