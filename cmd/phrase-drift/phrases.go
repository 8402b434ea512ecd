package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/phrase-drift/assembler"
	"github.com/lixenwraith/phrase-drift/config"
	"github.com/lixenwraith/phrase-drift/events"
	"github.com/lixenwraith/phrase-drift/render"
)

// Headless view size; only its aspect matters to projection
const (
	headlessWidth  = 80
	headlessHeight = 24
)

func newPhrasesCmd(loader func() *config.Loader) *cobra.Command {
	var budget time.Duration

	cmd := &cobra.Command{
		Use:   "phrases N",
		Short: "Run without a terminal and print the first N phrases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("phrases: N must be a positive integer, got %q", args[0])
			}
			cfg, err := loader().Load()
			if err != nil {
				return err
			}
			if f := setupLogging(cfg.Debug); f != nil {
				defer f.Close()
			}
			return runHeadless(cmd.OutOrStdout(), cfg, n, budget)
		},
	}
	cmd.Flags().DurationVar(&budget, "budget", 10*time.Minute, "simulated time allowed per phrase")
	return cmd
}

// runHeadless ticks a fresh assembler at the configured frame rate with an
// unrotated projection, printing phrases as they complete
func runHeadless(w io.Writer, cfg config.Config, n int, budget time.Duration) error {
	a, err := assembler.NewDefault(cfg.Options(), resolveSeed(cfg.Seed))
	if err != nil {
		return err
	}

	proj := render.NewProjection(cfg.BoxSize, headlessWidth, headlessHeight)
	router := events.NewRouter[io.Writer](a.Events())
	router.Register(events.HandlerFunc[io.Writer]{
		Types: []events.EventType{events.EventPhraseCompleted},
		Fn: func(out io.Writer, ev events.GameEvent) {
			if p, ok := ev.Payload.(*events.PhrasePayload); ok {
				fmt.Fprintf(out, "%d\t%s\t[%s]\n", p.Index+1, p.Text, p.Template)
			}
		},
	})
	router.Register(logHandler[io.Writer]())

	dt := cfg.FrameInterval()
	limit := time.Duration(n) * budget
	for elapsed := time.Duration(0); a.Completed() < n; elapsed += dt {
		if elapsed >= limit {
			return fmt.Errorf("phrases: only %d of %d phrases after %v simulated", a.Completed(), n, limit)
		}
		a.Tick(dt, 1, proj)
		router.DispatchAll(w)
	}
	return nil
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
