// Command fsmdemo drives a hand-wired traffic-light engine on a
// wall-clock ticker, printing each transition and its DOT rendering
// until interrupted or the demo cycle limit is reached.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comalice/fsmkit/internal/config"
	"github.com/comalice/fsmkit/internal/core"
	"github.com/comalice/fsmkit/internal/extensibility"
	"github.com/comalice/fsmkit/internal/primitives"
	"github.com/comalice/fsmkit/internal/production"
)

const timerEvent uint8 = 1

func main() {
	red := primitives.NewStateID()
	green := primitives.NewStateID()
	yellow := primitives.NewStateID()
	failed := primitives.NewStateID()

	names := map[primitives.StateID]string{
		red: "red", green: "green", yellow: "yellow", failed: "failed",
	}

	logger := extensibility.NewStdLogger(core.VisibilityInfo)
	e := core.NewEngine[uint8, int](
		core.WithLogger[uint8, int](logger),
	)

	e.AddStates([]core.State[uint8, int]{
		core.NewState[uint8, int](red, primitives.Unset, core.VoidHandler[int](func(int) { fmt.Println("entering red") })),
		core.NewState[uint8, int](green, primitives.Unset, core.VoidHandler[int](func(int) { fmt.Println("entering green") })),
		core.NewState[uint8, int](yellow, primitives.Unset, core.VoidHandler[int](func(int) { fmt.Println("entering yellow") })),
		core.NewState[uint8, int](failed, primitives.Unset, nil),
	})
	e.AddTransition(red, core.NewTransition[uint8, int](timerEvent, green, nil))
	e.AddTransition(green, core.NewTransition[uint8, int](timerEvent, yellow, nil))
	e.AddTransition(yellow, core.NewTransition[uint8, int](timerEvent, red, nil))

	e.SetStartState(red)
	e.SetErrorState(failed)
	e.AddStopState(failed)

	if !e.Start(true) {
		fmt.Println("engine failed validation")
		os.Exit(1)
	}
	defer e.Halt()

	notifyCh := make(chan production.StateChangeEvent, 16)
	notifier := production.NewChannelNotifier(notifyCh)

	visualizer := production.Visualizer{}
	def := &config.Definition{
		ID:         "traffic-light",
		Start:      "red",
		Error:      "failed",
		StopStates: []string{"failed"},
		States: []config.StateDef{
			{Name: "red"}, {Name: "green"}, {Name: "yellow"}, {Name: "failed"},
		},
		Transitions: []config.TransitionDef{
			{From: "red", Event: "timer", To: "green"},
			{From: "green", Event: "timer", To: "yellow"},
			{From: "yellow", Event: "timer", To: "red"},
		},
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	cycles := 0
	for {
		select {
		case <-ticker.C:
			before := e.CurrentState()
			e.Raise(timerEvent, cycles)
			status := e.Step()
			after := e.CurrentState()

			fmt.Printf("\n--- Cycle %d: %s (%s -> %s) ---\n", cycles+1, status, names[before], names[after])
			fmt.Println(visualizer.ExportDOT(def))
			notifier.Notify(context.Background(), production.StateChangeEvent{
				MachineID: def.ID, From: before, To: after, Event: "timer", At: time.Now(),
			})

			cycles++
			if cycles >= 12 {
				fmt.Println("demo complete after 12 cycles")
				return
			}
		case <-sig:
			fmt.Println("\nshutting down gracefully")
			return
		}
	}
}
