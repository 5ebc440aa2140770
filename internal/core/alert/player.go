package alert

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/penwyp/go-countdown/internal/util"
)

// Player describes an external audio player invocation
type Player struct {
	Name string
	Args []string
}

// knownPlayers are tried in order when no player is configured
var knownPlayers = []Player{
	{Name: "afplay"},
	{Name: "paplay"},
	{Name: "aplay", Args: []string{"-q"}},
	{Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// ParsePlayer splits a configured player command line such as "ffplay -nodisp"
func ParsePlayer(command string) (Player, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Player{}, fmt.Errorf("empty player command")
	}
	return Player{Name: fields[0], Args: fields[1:]}, nil
}

// DetectPlayer returns the configured player or the first known player on PATH
func DetectPlayer(configured string) (Player, error) {
	if configured != "" {
		p, err := ParsePlayer(configured)
		if err != nil {
			return Player{}, err
		}
		if _, err := lookPath(p.Name); err != nil {
			return Player{}, fmt.Errorf("player %s not found: %w", p.Name, err)
		}
		return p, nil
	}

	for _, p := range knownPlayers {
		if _, err := lookPath(p.Name); err == nil {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("no audio player found (tried %s)", knownPlayerNames())
}

func knownPlayerNames() string {
	names := make([]string, 0, len(knownPlayers))
	for _, p := range knownPlayers {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// Options selects the cues making up the completion alert
type Options struct {
	SoundFile string
	Player    string
	Bell      bool
	Terminal  io.Writer
}

// NewCue builds the alert cue. A sound file that cannot be played falls back
// to the bell, failures are logged rather than returned.
func NewCue(opts Options) Cue {
	var cues MultiCue

	if opts.SoundFile != "" {
		if _, err := os.Stat(opts.SoundFile); err != nil {
			util.LogWarnf("Sound file unavailable, using bell only: %v", err)
		} else if player, err := DetectPlayer(opts.Player); err != nil {
			util.LogWarnf("Sound disabled: %v", err)
		} else {
			util.LogInfof("Alert sound %s via %s", opts.SoundFile, player.Name)
			cues = append(cues, NewCommandCue(player.Name, player.Args, opts.SoundFile))
		}
	}

	if opts.Bell {
		cues = append(cues, NewBellCue(opts.Terminal))
	}

	switch len(cues) {
	case 0:
		return SilentCue{}
	case 1:
		return cues[0]
	default:
		return cues
	}
}
