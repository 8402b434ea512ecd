package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/phrase-drift/assembler"
	"github.com/lixenwraith/phrase-drift/audio"
	"github.com/lixenwraith/phrase-drift/config"
	"github.com/lixenwraith/phrase-drift/engine"
	"github.com/lixenwraith/phrase-drift/events"
	"github.com/lixenwraith/phrase-drift/grammar"
	"github.com/lixenwraith/phrase-drift/input"
	"github.com/lixenwraith/phrase-drift/render"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	testChdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.NewLoader("").Load()
	require.NoError(t, err)
	cfg.Seed = 11
	return cfg
}

func newTestSketch(t *testing.T) (*sketch, *engine.MockTimeProvider) {
	t.Helper()
	cfg := testConfig(t)

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)

	asm, err := assembler.NewDefault(cfg.Options(), cfg.Seed)
	require.NoError(t, err)

	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	s := &sketch{
		screen:   screen,
		asm:      asm,
		renderer: render.NewRenderer(screen, cfg.BoxSize, true),
		pointer:  input.NewPointerTracker(cfg.SpeedSensitivity),
		clock:    engine.NewPausableClock(mock, maxFrameDelta),
		router:   events.NewRouter[*sketch](asm.Events()),
		player:   audio.NewPlayer(0.5),
	}
	s.router.Register(audio.EventHandler[*sketch]{Player: s.player})
	s.router.Register(logHandler[*sketch]())
	return s, mock
}

func TestHandleIntent(t *testing.T) {
	s, _ := newTestSketch(t)
	now := time.Unix(10, 0)

	assert.False(t, s.handleIntent(input.Intent{Type: input.IntentQuit}, now))

	assert.True(t, s.handleIntent(input.Intent{Type: input.IntentTogglePause}, now))
	assert.True(t, s.clock.IsPaused())
	s.handleIntent(input.Intent{Type: input.IntentTogglePause}, now)
	assert.False(t, s.clock.IsPaused())

	s.handleIntent(input.Intent{Type: input.IntentToggleMute}, now)
	assert.True(t, s.player.Muted())

	s.handleIntent(input.Intent{Type: input.IntentPointer, X: 99, Y: 0}, now)
	x, y, ok := s.pointer.Position()
	require.True(t, ok)
	assert.Equal(t, 99, x)
	assert.Equal(t, 0, y)

	assert.True(t, s.handleIntent(input.Intent{Type: input.IntentResize}, now))
	assert.Equal(t, 100, s.renderer.Projection().Width)
}

func TestFrameAdvancesOnlyWhenRunning(t *testing.T) {
	s, mock := newTestSketch(t)
	s.asm.SetSpawnChance(1)

	// First frame establishes the clock baseline
	s.frame(mock.Now())
	for i := 0; i < 30; i++ {
		mock.Advance(16 * time.Millisecond)
		s.frame(mock.Now())
	}
	spawned := countWords(s.asm)
	require.Positive(t, spawned)

	progress := firstProgress(s.asm)
	s.clock.Pause()
	for i := 0; i < 30; i++ {
		mock.Advance(16 * time.Millisecond)
		s.frame(mock.Now())
	}
	assert.Equal(t, progress, firstProgress(s.asm), "paused frames must not move words")
}

func TestFrameRotationFollowsPointer(t *testing.T) {
	s, mock := newTestSketch(t)

	s.handleIntent(input.Intent{Type: input.IntentPointer, X: 99, Y: 29}, mock.Now())
	s.frame(mock.Now())

	p := s.renderer.Projection()
	assert.InDelta(t, input.MaxRotation, p.RotX, 1e-9)
	assert.InDelta(t, input.MaxRotation, p.RotY, 1e-9)
}

func TestApplyConfig(t *testing.T) {
	s, _ := newTestSketch(t)
	cfg := testConfig(t)
	cfg.SpawnChance = 0.05
	cfg.HUD = false
	cfg.Audio.Enabled = false
	cfg.Audio.Volume = 0.1

	s.applyConfig(cfg)

	assert.Equal(t, 0.05, s.asm.Options().SpawnChance)
	assert.True(t, s.player.Muted())
	assert.Equal(t, 0.1, s.player.Volume())
	assert.True(t, s.renderer.ToggleHUD(), "HUD was hidden so toggling shows it")
}

func countWords(a *assembler.Assembler) int {
	n := len(a.Buffer())
	for _, l := range a.Lanes() {
		n += len(l.Words())
	}
	return n
}

func firstProgress(a *assembler.Assembler) float64 {
	for _, l := range a.Lanes() {
		if ws := l.Words(); len(ws) > 0 {
			return ws[0].Progress
		}
	}
	return -1
}

func TestRunHeadless(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	require.NoError(t, runHeadless(&out, cfg, 2, 10*time.Minute))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1\t"))
	assert.True(t, strings.HasPrefix(lines[1], "2\t"))
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 3)
		words := strings.Fields(fields[1])
		assert.GreaterOrEqual(t, len(words), grammar.MinTemplateLen)
		assert.Contains(t, fields[2], "→")
	}
}

func TestRunHeadlessBudgetExhausted(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpawnChance = 0

	var out bytes.Buffer
	err := runHeadless(&out, cfg, 1, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 of 1")
}

func TestConfigCommand(t *testing.T) {
	testConfig(t)
	t.Setenv("PHRASE_DRIFT_LINES", "6")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--seed", "5"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "lines = 6")
	assert.Contains(t, out.String(), "seed = 5")
	assert.Contains(t, out.String(), "[audio]")
}

func TestPhrasesCommandRejectsBadCount(t *testing.T) {
	testConfig(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"phrases", "zero"})
	assert.Error(t, cmd.Execute())
}

func TestPhrasesCommand(t *testing.T) {
	testConfig(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"phrases", "1", "--seed", "3"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "1\t"))
}
