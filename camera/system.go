package camera

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/prisma/core"
)

/** @brief The name of the default camera. */
const DefaultCameraName string = "default"

type cameraEntry struct {
	ID             string
	ReferenceCount uint16
	Camera         *Camera3D
}

/** @brief The camera system configuration. */
type SystemConfig struct {
	// The maximum number of cameras that can be managed by the system.
	MaxCameraCount uint16
	// The aspect ratio newly acquired cameras are created with.
	Aspect float32
}

// System is a registry of named cameras with reference counting. A default,
// non-registered camera always exists as a fallback.
type System struct {
	Config        *SystemConfig
	lookup        map[string]*cameraEntry
	DefaultCamera *Camera3D
}

func NewSystem(config *SystemConfig) (*System, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewSystem - config.MaxCameraCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	if config.Aspect == 0 {
		err := fmt.Errorf("func NewSystem - config.Aspect must be > 0: %w", core.ErrMissingAspect)
		core.LogError(err.Error())
		return nil, err
	}
	s := &System{
		Config: config,
		lookup: make(map[string]*cameraEntry, config.MaxCameraCount),
	}
	// Setup default camera.
	def := NewCamera3D(config.Aspect)
	s.DefaultCamera = &def
	return s, nil
}

func (s *System) Shutdown() error {
	s.lookup = make(map[string]*cameraEntry)
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name. If one is not found, a new
 * one is created and returned. The internal reference counter is incremented.
 */
func (s *System) Acquire(name string) (*Camera3D, error) {
	if name == DefaultCameraName {
		return s.DefaultCamera, nil
	}
	entry, ok := s.lookup[name]
	if !ok {
		if len(s.lookup) >= int(s.Config.MaxCameraCount) {
			err := fmt.Errorf("func Acquire failed to acquire new slot. Adjust camera system config to allow more. Null returned")
			core.LogError(err.Error())
			return nil, err
		}
		core.LogDebug("Creating new camera named '%s'...", name)
		c := NewCamera3D(s.Config.Aspect)
		entry = &cameraEntry{
			ID:     uuid.New().String(),
			Camera: &c,
		}
		s.lookup[name] = entry
	}
	entry.ReferenceCount++
	return entry.Camera, nil
}

/**
 * @brief Releases a camera with the given name. The internal reference
 * counter is decremented; when it reaches 0 the camera is removed and the
 * name is usable by a new camera.
 */
func (s *System) Release(name string) {
	if name == DefaultCameraName {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	entry, ok := s.lookup[name]
	if !ok {
		core.LogWarn("Release failed lookup of camera '%s'. Nothing was done.", name)
		return
	}
	entry.ReferenceCount--
	if entry.ReferenceCount < 1 {
		delete(s.lookup, name)
	}
}

// Count returns the number of registered cameras, the default excluded.
func (s *System) Count() int {
	return len(s.lookup)
}

func (s *System) GetDefault() *Camera3D {
	return s.DefaultCamera
}
