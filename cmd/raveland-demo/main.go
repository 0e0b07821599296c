package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"gioui.org/app"
	"github.com/raveland/raveland/cmd"
	"github.com/raveland/raveland/editor/gioui"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var defaultMidiInput = flag.String("midi-input", "", "connect MIDI input to matching device name prefix")
var presetIndex = flag.Int("preset", 0, "start from the preset with this `index`")

func main() {
	flag.Parse()
	var f *os.File
	if *cpuprofile != "" {
		var err error
		f, err = os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}
	model, err := cmd.NewModel(*presetIndex)
	if err != nil {
		log.Fatalf("could not apply preset: %v", err)
	}
	ui := gioui.NewApp(model)
	prefix := ui.Preferences().MIDIInput
	if isFlagPassed("midi-input") {
		prefix = *defaultMidiInput
	}
	cmd.OpenMIDIInput(model, prefix)

	go func() {
		ui.Main()
		model.MIDI().Close()
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		if *memprofile != "" {
			f, err := os.Create(*memprofile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
		os.Exit(0)
	}()
	app.Main()
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
