package app

import (
	"fmt"

	"github.com/kobzarvs/sevenguis/internal/demo"
	"github.com/kobzarvs/sevenguis/internal/demo/counter"
	"github.com/kobzarvs/sevenguis/internal/demo/flight"
	"github.com/kobzarvs/sevenguis/internal/demo/tempconv"
)

// NewDemo builds the demo registered under name.
func NewDemo(name string, env demo.Env) (demo.View, error) {
	switch name {
	case "counter":
		return counter.New(env), nil
	case "flight":
		return flight.New(env), nil
	case "temperature":
		return tempconv.New(env), nil
	}
	return nil, fmt.Errorf("unknown demo %q", name)
}
