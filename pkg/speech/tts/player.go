package tts

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Player opens an audio file with the host's default media handler. Playback
// is fire-and-forget: Open returns as soon as the handler is spawned.
type Player struct {
	goos string
}

func NewPlayer() *Player {
	return &Player{goos: runtime.GOOS}
}

func (p *Player) command(path string) *exec.Cmd {
	switch p.goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Probe reports whether a default media handler can be resolved on this
// host. Cloud deployments have none.
func (p *Player) Probe() error {
	var binary string
	switch p.goos {
	case "darwin":
		binary = "open"
	case "windows":
		binary = "cmd"
	default:
		binary = "xdg-open"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("no media handler on host: %w", err)
	}
	return nil
}

func (p *Player) Open(path string) error {
	if err := p.command(path).Start(); err != nil {
		return fmt.Errorf("spawning media handler: %w", err)
	}
	return nil
}
