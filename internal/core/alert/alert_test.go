package alert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// manualScheduler records scheduled callbacks so tests can fire them explicitly
type manualScheduler struct {
	mu      sync.Mutex
	delays  []time.Duration
	pending []*scheduled
}

type scheduled struct {
	f         func()
	cancelled bool
}

func (s *manualScheduler) schedule(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &scheduled{f: f}
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, item)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		was := !item.cancelled
		item.cancelled = true
		return was
	}
}

// fire runs callback i regardless of cancellation, like a timer that already expired
func (s *manualScheduler) fire(i int) {
	s.mu.Lock()
	f := s.pending[i].f
	s.mu.Unlock()
	f()
}

func newTestAlerter(cue Cue) (*Alerter, *manualScheduler) {
	sched := &manualScheduler{}
	a := NewAlerter(cue)
	a.schedule = sched.schedule
	return a, sched
}

func TestAlerter_TriggerPlaysThenStopsAfterOneSecond(t *testing.T) {
	ctrl := gomock.NewController(t)
	cue := NewMockCue(ctrl)

	gomock.InOrder(
		cue.EXPECT().Play().Return(nil),
		cue.EXPECT().Stop().Return(nil),
	)

	a, sched := newTestAlerter(cue)
	a.Trigger()

	require.Len(t, sched.delays, 1)
	assert.Equal(t, time.Second, sched.delays[0])
	assert.True(t, a.pending())

	sched.fire(0)
	assert.False(t, a.pending())
}

func TestAlerter_PlayErrorIsAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	cue := NewMockCue(ctrl)

	cue.EXPECT().Play().Return(errors.New("blocked"))
	cue.EXPECT().Stop().Return(errors.New("still blocked"))

	a, sched := newTestAlerter(cue)
	a.Trigger()
	sched.fire(0)
}

func TestAlerter_RetriggerRestartsStopWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	cue := NewMockCue(ctrl)

	cue.EXPECT().Play().Return(nil).Times(2)
	cue.EXPECT().Stop().Return(nil).Times(1)

	a, sched := newTestAlerter(cue)
	a.Trigger()
	a.Trigger()
	require.Len(t, sched.pending, 2)
	assert.True(t, sched.pending[0].cancelled)

	// The stale stop already expired; it must not cut the new cue short
	sched.fire(0)
	assert.True(t, a.pending())

	sched.fire(1)
	assert.False(t, a.pending())
}

func TestAlerter_CloseStopsPendingCue(t *testing.T) {
	ctrl := gomock.NewController(t)
	cue := NewMockCue(ctrl)

	cue.EXPECT().Play().Return(nil)
	cue.EXPECT().Stop().Return(nil)

	a, sched := newTestAlerter(cue)
	a.Trigger()
	require.NoError(t, a.Close())

	// Timer racing with Close is ignored
	sched.fire(0)
	assert.False(t, a.pending())
}

func TestAlerter_CloseWithoutTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	cue := NewMockCue(ctrl)

	a, _ := newTestAlerter(cue)
	assert.NoError(t, a.Close())
}

func TestAlerter_RealTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	cue := NewMockCue(ctrl)

	stopped := make(chan struct{})
	cue.EXPECT().Play().Return(nil)
	cue.EXPECT().Stop().DoAndReturn(func() error {
		close(stopped)
		return nil
	})

	a := NewAlerter(cue)
	a.stopAfter = 10 * time.Millisecond
	a.Trigger()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("cue was not stopped")
	}
}

func TestBellCue(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBellCue(&buf)

	require.NoError(t, bell.Play())
	require.NoError(t, bell.Stop())
	require.NoError(t, bell.Play())
	assert.Equal(t, "\a\a", buf.String())
}

func TestMultiCue(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockCue(ctrl)
	second := NewMockCue(ctrl)

	first.EXPECT().Play().Return(errors.New("first failed"))
	second.EXPECT().Play().Return(nil)
	first.EXPECT().Stop().Return(nil)
	second.EXPECT().Stop().Return(nil)

	multi := MultiCue{first, second}
	err := multi.Play()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")
	assert.NoError(t, multi.Stop())
}

func TestCommandCue_StopWithoutPlay(t *testing.T) {
	cue := NewCommandCue("definitely-not-a-player", nil, "alarm.mp3")
	assert.NoError(t, cue.Stop())
}

func TestCommandCue_MissingPlayer(t *testing.T) {
	cue := NewCommandCue("definitely-not-a-player-binary", nil, "alarm.mp3")
	err := cue.Play()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
}

func TestParsePlayer(t *testing.T) {
	p, err := ParsePlayer("ffplay -nodisp  -autoexit")
	require.NoError(t, err)
	assert.Equal(t, "ffplay", p.Name)
	assert.Equal(t, []string{"-nodisp", "-autoexit"}, p.Args)

	_, err = ParsePlayer("   ")
	assert.Error(t, err)
}

func withLookPath(t *testing.T, available ...string) {
	t.Helper()
	original := lookPath
	t.Cleanup(func() { lookPath = original })

	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	lookPath = func(file string) (string, error) {
		if set[file] {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestDetectPlayer(t *testing.T) {
	tests := []struct {
		name       string
		available  []string
		configured string
		expected   string
		wantErr    bool
	}{
		{name: "first known player wins", available: []string{"aplay", "paplay"}, expected: "paplay"},
		{name: "ffplay fallback", available: []string{"ffplay"}, expected: "ffplay"},
		{name: "nothing installed", wantErr: true},
		{name: "configured player", available: []string{"mpv"}, configured: "mpv --no-video", expected: "mpv"},
		{name: "configured player missing", available: []string{"afplay"}, configured: "mpv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withLookPath(t, tt.available...)
			p, err := DetectPlayer(tt.configured)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Name)
		})
	}
}

func TestNewCue(t *testing.T) {
	sound := filepath.Join(t.TempDir(), "alarm.mp3")
	require.NoError(t, os.WriteFile(sound, []byte("ID3"), 0644))

	t.Run("silent", func(t *testing.T) {
		withLookPath(t)
		assert.IsType(t, SilentCue{}, NewCue(Options{}))
	})

	t.Run("bell only", func(t *testing.T) {
		withLookPath(t)
		assert.IsType(t, &BellCue{}, NewCue(Options{Bell: true, Terminal: &bytes.Buffer{}}))
	})

	t.Run("missing sound file falls back to bell", func(t *testing.T) {
		withLookPath(t, "paplay")
		cue := NewCue(Options{SoundFile: "/nonexistent/alarm.mp3", Bell: true, Terminal: &bytes.Buffer{}})
		assert.IsType(t, &BellCue{}, cue)
	})

	t.Run("sound without player", func(t *testing.T) {
		withLookPath(t)
		assert.IsType(t, SilentCue{}, NewCue(Options{SoundFile: sound}))
	})

	t.Run("sound and bell", func(t *testing.T) {
		withLookPath(t, "paplay")
		cue := NewCue(Options{SoundFile: sound, Bell: true, Terminal: &bytes.Buffer{}})
		multi, ok := cue.(MultiCue)
		require.True(t, ok)
		require.Len(t, multi, 2)
		assert.IsType(t, &CommandCue{}, multi[0])
	})
}
