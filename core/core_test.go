// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devblok/korugl/core"
	qt "github.com/frankban/quicktest"
	log "github.com/sirupsen/logrus"
)

// setenv sets an environment variable for the duration of the test.
func setenv(c *qt.C, key, value string) {
	old, ok := os.LookupEnv(key)
	c.Assert(os.Setenv(key, value), qt.IsNil)
	c.Cleanup(func() {
		if ok {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func envFile(c *qt.C, contents string) string {
	dir, err := ioutil.TempDir("", "core")
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, ".env")
	c.Assert(ioutil.WriteFile(path, []byte(contents), 0644), qt.IsNil)
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	c := qt.New(t)
	cfg, err := core.LoadConfiguration(filepath.Join("testdata", "missing.env"))
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, core.DefaultConfiguration())
}

func TestLoadConfigurationEnv(t *testing.T) {
	c := qt.New(t)
	setenv(c, core.EnvWidth, "1280")
	setenv(c, core.EnvScene, "triangle")
	setenv(c, core.EnvLogLevel, "debug")

	path := envFile(c, "KORUGL_WIDTH=640\nKORUGL_HEIGHT=480\nKORUGL_ARCHIVE=assets.kar\n")
	cfg, err := core.LoadConfiguration(path)
	c.Assert(err, qt.IsNil)

	// The environment wins over the file.
	c.Assert(cfg.Window.Width, qt.Equals, 1280)
	c.Assert(cfg.Window.Height, qt.Equals, 480)
	c.Assert(cfg.Resources.Archive, qt.Equals, "assets.kar")
	c.Assert(cfg.Resources.Assets, qt.Equals, "assets")
	c.Assert(cfg.Renderer.Scene, qt.Equals, "triangle")
	c.Assert(cfg.LogLevel, qt.Equals, log.DebugLevel)
}

func TestLoadConfigurationInvalid(t *testing.T) {
	c := qt.New(t)
	for key, value := range map[string]string{
		core.EnvFPS:      "sixty",
		core.EnvHeight:   "-1",
		core.EnvLogLevel: "loud",
	} {
		c.Run(key, func(c *qt.C) {
			setenv(c, key, value)
			_, err := core.LoadConfiguration("")
			c.Assert(err, qt.ErrorMatches, key+".*")
		})
	}
}

func TestTime(t *testing.T) {
	c := qt.New(t)
	tm := core.NewTime(core.TimeConfiguration{FramesPerSecond: 100, EventPollDelay: 5})
	defer tm.Stop()

	c.Assert(tm.Fps(), qt.Equals, 100)
	c.Assert(tm.EventPollDelay(), qt.Equals, 5*time.Millisecond)

	select {
	case <-tm.FpsTicker().C:
	case <-time.After(time.Second):
		c.Fatal("fps ticker did not fire")
	}
	select {
	case <-tm.EventTicker().C:
	case <-time.After(time.Second):
		c.Fatal("event ticker did not fire")
	}
	c.Assert(tm.Elapsed() > 0, qt.IsTrue)
}

func TestTimeUnlimited(t *testing.T) {
	c := qt.New(t)
	tm := core.NewTime(core.TimeConfiguration{})
	defer tm.Stop()
	c.Assert(tm.Fps(), qt.Equals, 0)
	c.Assert(tm.EventPollDelay(), qt.Equals, time.Millisecond)
}
