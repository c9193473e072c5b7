package overlay

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"magnify/internal/config"
)

// initWindow opens a window of the content's size, shrunk to the primary
// monitor if needed.
func initWindow(cfg config.WindowConfig, width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, boolHint(cfg.Decorated))
	glfw.WindowHint(glfw.Floating, boolHint(cfg.Floating))

	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		if mode := mon.GetVideoMode(); mode != nil {
			width = min(width, mode.Width)
			height = min(height, mode.Height)
		}
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
