package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/raveland/raveland/cmd"
	"github.com/raveland/raveland/editor/term"
	"golang.org/x/sync/errgroup"
)

var defaultMidiInput = flag.String("midi-input", "", "connect MIDI input to matching device name prefix")
var presetIndex = flag.Int("preset", 0, "start from the preset with this `index`")

func main() {
	flag.Parse()
	model, err := cmd.NewModel(*presetIndex)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	defer model.MIDI().Close()
	cmd.OpenMIDIInput(model, *defaultMidiInput)
	broker := model.Broker()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	p := tea.NewProgram(term.New(model), tea.WithAltScreen(), tea.WithContext(ctx))
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		select {
		case <-broker.CloseGUI:
			p.Quit()
		case <-ctx.Done():
		case <-done:
		}
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Fatalf("error: %v", err)
	}
}
