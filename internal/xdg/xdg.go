// Package xdg resolves the per-user base directories hyprshade reads its
// configuration from and writes rendered templates to.
package xdg

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// AppName names the hyprshade subdirectory inside each base directory.
const AppName = "hyprshade"

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(key string) string

// Home returns $HOME, falling back to the user database.
func Home(getenv Getenv) string {
	if home := getenv("HOME"); home != "" {
		return home
	}
	home, err := homedir.Dir()
	if err != nil {
		return "."
	}
	return home
}

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome(getenv Getenv) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(Home(getenv), ".config")
}

// StateHome returns $XDG_STATE_HOME or ~/.local/state.
func StateHome(getenv Getenv) string {
	if dir := getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(Home(getenv), ".local", "state")
}

// UserStateDir is where rendered templates are cached.
func UserStateDir(getenv Getenv) string {
	return filepath.Join(StateHome(getenv), AppName)
}

// UserConfigFile is the default configuration file location.
func UserConfigFile(getenv Getenv) string {
	return filepath.Join(ConfigHome(getenv), AppName, "config.hcl")
}

// Expand replaces a leading "~" with the home directory.
func Expand(getenv Getenv, path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		return filepath.Join(Home(getenv), path[1:]), nil
	}
	return homedir.Expand(path)
}
