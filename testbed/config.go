package testbed

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/prisma/core"
	"github.com/spaghettifunk/prisma/math"
)

// CameraConfig describes the demo camera frustum.
type CameraConfig struct {
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	Aspect   float32    `toml:"aspect"`
	Position [3]float32 `toml:"position"`
}

// TransformConfig describes one end of the animation blend.
type TransformConfig struct {
	Translation  [3]float32 `toml:"translation"`
	RotationAxis [3]float32 `toml:"rotation_axis"`
	RotationDeg  float32    `toml:"rotation_deg"`
	Scale        [3]float32 `toml:"scale"`
	Order        string     `toml:"order"`
}

// AnimationConfig describes the blend the demo runs.
type AnimationConfig struct {
	From   TransformConfig `toml:"from"`
	To     TransformConfig `toml:"to"`
	Frames int             `toml:"frames"`
}

type Config struct {
	Camera    CameraConfig    `toml:"camera"`
	Animation AnimationConfig `toml:"animation"`
}

// DefaultConfig is used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			FOV:      45.0,
			Near:     0.1,
			Far:      1000.0,
			Aspect:   16.0 / 9.0,
			Position: [3]float32{0, 2, 10},
		},
		Animation: AnimationConfig{
			From: TransformConfig{
				Scale: [3]float32{1, 1, 1},
				Order: "TRS",
			},
			To: TransformConfig{
				Translation:  [3]float32{10, 0, 0},
				RotationAxis: [3]float32{0, 1, 0},
				RotationDeg:  90,
				Scale:        [3]float32{2, 2, 2},
				Order:        "TRS",
			},
			Frames: 120,
		},
	}
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Transform converts the config block into a math transform.
func (tc TransformConfig) Transform() (math.Transform3, error) {
	order, ok := math.ParseTransformOrder(tc.Order)
	if !ok {
		return math.Transform3{}, fmt.Errorf("transform config order %q: %w", tc.Order, core.ErrUnknownOrder)
	}
	t := math.NewTransform3()
	t.Translation = math.NewVec3(tc.Translation[0], tc.Translation[1], tc.Translation[2])
	t.Scale = math.NewVec3(tc.Scale[0], tc.Scale[1], tc.Scale[2])
	t.Order = order
	axis := math.NewVec3(tc.RotationAxis[0], tc.RotationAxis[1], tc.RotationAxis[2])
	if axis.LengthSquared() > 0 {
		t.Rotation = math.NewQuatFromAxisAngle(axis, math.DegToRad(tc.RotationDeg))
	}
	return t, nil
}

// ConfigWatcher hot-reloads the config file when it changes on disk.
type ConfigWatcher struct {
	path     string
	onReload func(*Config)

	mutex    sync.Mutex
	fsnotify *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

func NewConfigWatcher(path string, onReload func(*Config)) (*ConfigWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &ConfigWatcher{
		path:     path,
		onReload: onReload,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	// Watch the directory; editors replace files on save and a watch on
	// the file itself is lost with the old inode.
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	go w.start()
	return w, nil
}

func (w *ConfigWatcher) start() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				cfg, err := LoadConfig(w.path)
				if err != nil {
					core.LogWarn("config reload failed: %v", err)
					continue
				}
				core.LogInfo("config reloaded from %s", w.path)
				w.onReload(cfg)
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %v", err)
		}
	}
}

func (w *ConfigWatcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
