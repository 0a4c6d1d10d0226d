package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScript turns a compact input script into one Input per tick. Steps are
// comma separated; a step is one or more keys joined by '+' with an optional
// "*N" repeat count:
//
//	ENTER,UP*30,LEFT+UP*5,M,WAIT*3,MOUSE=120,ESC
//
// Keys are ENTER, ESC, UP, DOWN, LEFT, RIGHT, M, F2, WAIT and MOUSE=<x>.
// Repeating an edge-triggered key presses it on every repeated tick.
func ParseScript(script string) ([]Input, error) {
	var out []Input
	for i, raw := range strings.Split(script, ",") {
		step := strings.TrimSpace(raw)
		if step == "" {
			continue
		}

		repeat := 1
		if keys, count, ok := strings.Cut(step, "*"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("step %d %q: bad repeat count", i+1, step)
			}
			step, repeat = strings.TrimSpace(keys), n
		}

		var in Input
		for _, key := range strings.Split(step, "+") {
			if err := applyKey(&in, strings.TrimSpace(key)); err != nil {
				return nil, fmt.Errorf("step %d %q: %w", i+1, step, err)
			}
		}
		for range repeat {
			out = append(out, in)
		}
	}
	return out, nil
}

func applyKey(in *Input, key string) error {
	if v, ok := strings.CutPrefix(strings.ToUpper(key), "MOUSE="); ok {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("bad mouse column %q", v)
		}
		in.MouseX, in.HasMouse = x, true
		return nil
	}

	switch strings.ToUpper(key) {
	case "ENTER":
		in.Enter = true
	case "ESC":
		in.Escape = true
	case "UP":
		in.Up = true
	case "DOWN":
		in.Down = true
	case "LEFT":
		in.Left = true
	case "RIGHT":
		in.Right = true
	case "M":
		in.ToggleMode = true
	case "F2":
		in.CopySnapshot = true
	case "WAIT":
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}
