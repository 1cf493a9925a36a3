package main

import (
	"fmt"

	"github.com/go-sketch/sketch/pkg/handle"
	"github.com/go-sketch/sketch/pkg/host"
	"github.com/go-sketch/sketch/pkg/host/memhost"
)

// runDemo builds a small scene against the in-memory host and drives the
// media clock by hand, printing what the capability layer does along the
// way.
func runDemo([]string) error {
	h := memhost.New()
	rt, err := handle.New(h, cfg)
	if err != nil {
		return err
	}

	box := rt.CreateCheckbox()
	box.SetChecked(true)
	fmt.Printf("checkbox: checked=%v\n", box.Checked())

	sel := rt.CreateSelect(false)
	sel.Option("Small", "s")
	sel.Option("Large", "l")
	sel.SetSelected("l")
	fmt.Printf("select:   value=%s\n", sel.Selected())

	radio := rt.CreateRadio()
	radio.Option("Red", "red")
	radio.Option("Blue", "blue")
	radio.SetSelected("blue")
	fmt.Printf("radio:    group=%s value=%s\n", radio.GroupName(), radio.Value())

	media := rt.CreateMedia("audio", "demo://track")
	media.OnEnded(func(*handle.Media) { fmt.Println("media:    ended") })
	media.AddCue(1.0, func(payload any) {
		fmt.Printf("cue:      fired at 1.0s payload=%v\n", payload)
	}, "intro")
	media.AddCue(2.5, func(any) { fmt.Println("cue:      fired at 2.5s") })

	node := media.MediaNode().(*memhost.MediaNode)
	node.LoadMetadata(3)
	node.SetReady(host.HaveEnoughData)
	media.Play()
	for _, tick := range []float64{0.5, 1.2, 2.6} {
		node.AdvanceTime(tick)
	}
	node.FinishPlayback()

	fmt.Printf("registry: %d handles\n", rt.Registry().Len())
	if err := rt.RemoveElements(); err != nil {
		return err
	}
	fmt.Printf("registry: %d handles after removal\n", rt.Registry().Len())
	return nil
}
