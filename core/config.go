// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"os"
	"strconv"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Environment variables read by LoadConfiguration.
const (
	EnvAssets   = "KORUGL_ASSETS"
	EnvArchive  = "KORUGL_ARCHIVE"
	EnvWidth    = "KORUGL_WIDTH"
	EnvHeight   = "KORUGL_HEIGHT"
	EnvFPS      = "KORUGL_FPS"
	EnvScene    = "KORUGL_SCENE"
	EnvLogLevel = "KORUGL_LOG_LEVEL"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time      TimeConfiguration
	Window    WindowConfiguration
	Resources ResourcesConfiguration
	Renderer  RendererConfiguration
	LogLevel  log.Level
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between window event polls
	// in milliseconds.
	EventPollDelay int
}

// WindowConfiguration describes the window the context is created in
type WindowConfiguration struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// ResourcesConfiguration tells where assets are loaded from
type ResourcesConfiguration struct {
	// Assets is a directory relative to the executable.
	Assets string

	// Archive is an optional kar archive consulted after Assets.
	Archive string
}

// RendererConfiguration is used to configure the renderer
type RendererConfiguration struct {
	Scene        string
	TextureUnits int
	ClearColor   glm.Vec3
}

// DefaultConfiguration returns the configuration used when nothing
// is overridden.
func DefaultConfiguration() Configuration {
	return Configuration{
		Time: TimeConfiguration{
			FramesPerSecond: 60,
			EventPollDelay:  10,
		},
		Window: WindowConfiguration{
			Title:     "korugl",
			Width:     900,
			Height:    700,
			Resizable: true,
		},
		Resources: ResourcesConfiguration{
			Assets: "assets",
		},
		Renderer: RendererConfiguration{
			Scene:        "square",
			TextureUnits: 16,
			ClearColor:   glm.Vec3{0.3, 0.3, 0.5},
		},
		LogLevel: log.InfoLevel,
	}
}

// LoadConfiguration starts from DefaultConfiguration and applies
// overrides from the environment. Values from envFile, a dotenv file,
// are used for variables the environment does not already set. A
// missing envFile is not an error.
func LoadConfiguration(envFile string) (Configuration, error) {
	envy.Reload()
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case os.IsNotExist(errors.Cause(err)):
		case err != nil:
			return Configuration{}, errors.Wrapf(err, "read %s", envFile)
		}
		for k, v := range vars {
			if _, ok := os.LookupEnv(k); !ok {
				envy.Set(k, v)
			}
		}
	}

	cfg := DefaultConfiguration()
	cfg.Resources.Assets = envy.Get(EnvAssets, cfg.Resources.Assets)
	cfg.Resources.Archive = envy.Get(EnvArchive, cfg.Resources.Archive)
	cfg.Renderer.Scene = envy.Get(EnvScene, cfg.Renderer.Scene)

	for _, v := range []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Window.Width},
		{EnvHeight, &cfg.Window.Height},
		{EnvFPS, &cfg.Time.FramesPerSecond},
	} {
		if err := envInt(v.key, v.dst); err != nil {
			return Configuration{}, err
		}
	}

	if s := envy.Get(EnvLogLevel, ""); s != "" {
		lvl, err := log.ParseLevel(s)
		if err != nil {
			return Configuration{}, errors.Wrapf(err, "%s", EnvLogLevel)
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

func envInt(key string, dst *int) error {
	s := envy.Get(key, "")
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	if n < 0 {
		return errors.Errorf("%s must not be negative, got %d", key, n)
	}
	*dst = n
	return nil
}
