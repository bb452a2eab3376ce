package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/vk/hyprshade/internal/config"
	"github.com/vk/hyprshade/internal/ctxlog"
	"github.com/vk/hyprshade/internal/hyprctl"
	"github.com/vk/hyprshade/internal/shader"
	"github.com/vk/hyprshade/internal/shaderdirs"
	"github.com/vk/hyprshade/internal/template"
	"github.com/vk/hyprshade/internal/xdg"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger  *slog.Logger
	library *shader.Library
}

type options struct {
	fs         afero.Fs
	controller hyprctl.Controller
}

// Option customizes how NewApp builds its dependencies.
type Option func(*options)

// WithFs replaces the OS filesystem used for shaders and rendered templates.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// WithController replaces the hyprctl-backed compositor controller.
func WithController(c hyprctl.Controller) Option {
	return func(o *options) { o.controller = c }
}

// NewApp is the constructor for the main application. It configures an
// isolated logger writing to logW, loads the configuration file and wires
// the shader library.
func NewApp(logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) (*App, error) {
	o := &options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(o)
	}

	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	getenv := appConfig.Getenv
	configPaths, err := configPaths(o.fs, appConfig)
	if err != nil {
		return nil, err
	}

	cfgModel, converter, err := loader.Load(ctx, configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "paths", configPaths)

	extraDirs := make([]string, 0, len(cfgModel.ShaderDirs))
	for _, dir := range cfgModel.ShaderDirs {
		expanded, err := xdg.Expand(getenv, dir)
		if err != nil {
			return nil, fmt.Errorf("invalid shader directory %q: %w", dir, err)
		}
		extraDirs = append(extraDirs, expanded)
	}
	dirs := shaderdirs.Default(getenv, extraDirs...)
	logger.Debug("Shader directories resolved.", "dirs", dirs.All())

	stateDir := xdg.UserStateDir(getenv)
	if cfgModel.StateDir != "" {
		if stateDir, err = xdg.Expand(getenv, cfgModel.StateDir); err != nil {
			return nil, fmt.Errorf("invalid state directory %q: %w", cfgModel.StateDir, err)
		}
	}
	renderer := template.NewRenderer(o.fs, stateDir)

	controller := o.controller
	if controller == nil {
		if controller, err = hyprctl.New(cfgModel.ControlCommand); err != nil {
			return nil, err
		}
	}

	variables := func(name string) (any, error) {
		return converter.ToNative(cfgModel.Variables(name))
	}

	library := shader.NewLibrary(dirs, renderer, controller,
		shader.WithFs(o.fs),
		shader.WithVariables(variables),
	)

	return &App{
		logger:  logger,
		library: library,
	}, nil
}

// configPaths returns the explicit config path, or the default config file
// when it exists.
func configPaths(fsys afero.Fs, appConfig *Config) ([]string, error) {
	if appConfig.ConfigPath != "" {
		path, err := xdg.Expand(appConfig.Getenv, appConfig.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path %q: %w", appConfig.ConfigPath, err)
		}
		return []string{path}, nil
	}
	path := xdg.UserConfigFile(appConfig.Getenv)
	if exists, _ := afero.Exists(fsys, path); exists {
		return []string{path}, nil
	}
	return nil, nil
}

// Library returns the application's shader library. This is primarily for testing.
func (a *App) Library() *shader.Library {
	return a.library
}

// context attaches the app logger to ctx.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
