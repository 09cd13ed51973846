/*
Package testbed is an example application that exercises the library:
it blends between two configured transforms while building the camera
view-projection every frame, with the config hot-reloadable from disk.
*/
package testbed

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spaghettifunk/prisma/camera"
	"github.com/spaghettifunk/prisma/core"
	"github.com/spaghettifunk/prisma/math"
)

type Game struct {
	configPath string

	mutex sync.RWMutex
	cfg   *Config

	watcher *ConfigWatcher
	clock   *core.Clock
	cameras *camera.System

	done chan struct{}
}

func NewGame(configPath string) (*Game, error) {
	g := &Game{
		configPath: configPath,
		clock:      core.NewClock(),
		done:       make(chan struct{}),
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		core.LogWarn("no config at %s, using defaults", configPath)
		cfg = DefaultConfig()
	}
	g.cfg = cfg

	g.cameras, err = camera.NewSystem(&camera.SystemConfig{
		MaxCameraCount: 8,
		Aspect:         cfg.Camera.Aspect,
	})
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(configPath); statErr == nil {
		g.watcher, err = NewConfigWatcher(configPath, g.onReload)
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) onReload(cfg *Config) {
	g.mutex.Lock()
	g.cfg = cfg
	g.mutex.Unlock()
}

func (g *Game) config() *Config {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.cfg
}

// Run drives the blend loop until all configured frames have played or
// Shutdown is called.
func (g *Game) Run() error {
	cfg := g.config()

	cam, err := g.cameras.Acquire("world")
	if err != nil {
		return err
	}
	defer g.cameras.Release("world")

	g.clock.Start()
	frames := cfg.Animation.Frames
	if frames <= 0 {
		frames = 120
	}

	for frame := 0; frame <= frames; frame++ {
		select {
		case <-g.done:
			core.LogInfo("testbed interrupted at frame %d", frame)
			return nil
		default:
		}

		if err := g.step(g.config(), cam, float32(frame)/float32(frames)); err != nil {
			return err
		}
		time.Sleep(8 * time.Millisecond)
	}

	g.clock.Update()
	core.LogInfo("testbed finished %d frames in %.2fs", frames, g.clock.ElapsedSeconds())
	return nil
}

func (g *Game) step(cfg *Config, cam *camera.Camera3D, alpha float32) error {
	from, err := cfg.Animation.From.Transform()
	if err != nil {
		return err
	}
	to, err := cfg.Animation.To.Transform()
	if err != nil {
		return err
	}

	var a, b, blended math.Mat4
	if _, err := from.Compose(&a); err != nil {
		return err
	}
	if _, err := to.Compose(&b); err != nil {
		return err
	}
	math.LerpMat4(a, b, alpha, &blended)

	cam.Position = math.NewVec3(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2])
	cam.FOV = cfg.Camera.FOV
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Aspect = cfg.Camera.Aspect

	var vp math.Mat4
	if _, err := cam.ViewProjection(&vp); err != nil {
		return err
	}
	clip := vp.Mul(blended).TransformPoint(math.NewVec3Zero())

	var t math.Transform3
	blended.Decompose(&t)
	core.LogDebug("alpha=%.2f translation=(%.2f, %.2f, %.2f) scale=(%.2f, %.2f, %.2f) clip=(%.2f, %.2f, %.2f)",
		alpha,
		t.Translation.X, t.Translation.Y, t.Translation.Z,
		t.Scale.X, t.Scale.Y, t.Scale.Z,
		clip.X, clip.Y, clip.Z)
	return nil
}

// Shutdown stops the loop and releases the watcher.
func (g *Game) Shutdown() error {
	select {
	case <-g.done:
	default:
		close(g.done)
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			return fmt.Errorf("closing config watcher: %w", err)
		}
	}
	return g.cameras.Shutdown()
}
