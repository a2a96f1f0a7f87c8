// Package script runs tengo-scripted camera cutscenes. A script executes
// once at compile time and enqueues camera commands through its builtins;
// the resulting Cutscene then plays the queue through the director, moving
// to the next command when the previous one's completion callback fires.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/storyframe/stagecam/director"
	"github.com/storyframe/stagecam/obj"
	"github.com/storyframe/stagecam/prefabs"
)

type cmdKind int

const (
	cmdFade cmdKind = iota
	cmdPanToView
	cmdFadeToView
	cmdPanPath
	cmdWait
)

type command struct {
	kind     cmdKind
	name     string
	names    []string
	alpha    float64
	duration float64
}

// Cutscene is a compiled sequence of camera commands.
type Cutscene struct {
	cmds []command
	idx  int

	d        *director.Director
	busy     bool
	waitLeft float64
}

// Load compiles the named embedded cutscene script.
func Load(name string) (*Cutscene, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(src)
}

// Compile runs src once, collecting the camera commands it enqueues.
// Scripts have the tengo math and fmt stdlib modules available plus the
// builtins fade(alpha, duration), pan_to_view(name, duration),
// fade_to_view(name, duration), pan_path(names, duration) and
// wait(seconds).
func Compile(src []byte) (*Cutscene, error) {
	c := &Cutscene{}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math", "fmt"))

	builtins := []struct {
		name string
		fn   tengo.CallableFunc
	}{
		{"fade", c.addFade},
		{"pan_to_view", c.addPanToView},
		{"fade_to_view", c.addFadeToView},
		{"pan_path", c.addPanPath},
		{"wait", c.addWait},
	}
	for _, b := range builtins {
		if err := s.Add(b.name, &tengo.UserFunction{Name: b.name, Value: b.fn}); err != nil {
			return nil, fmt.Errorf("script: add builtin %s: %w", b.name, err)
		}
	}

	if _, err := s.Run(); err != nil {
		return nil, fmt.Errorf("script: run: %w", err)
	}
	return c, nil
}

// Play starts the cutscene on d. A cutscene plays at most once.
func (c *Cutscene) Play(d *director.Director) {
	c.d = d
}

// Done reports whether every command has been issued and completed.
func (c *Cutscene) Done() bool {
	return c.d != nil && c.idx >= len(c.cmds) && !c.busy && c.waitLeft <= 0
}

// Len returns the number of queued commands.
func (c *Cutscene) Len() int {
	return len(c.cmds)
}

// Update advances the cutscene. Call once per tick after Play.
func (c *Cutscene) Update(dt float64) {
	if c.d == nil || c.busy {
		return
	}
	if c.waitLeft > 0 {
		c.waitLeft -= dt
		if c.waitLeft > 0 {
			return
		}
	}
	if c.idx >= len(c.cmds) {
		return
	}

	cmd := c.cmds[c.idx]
	c.idx++

	switch cmd.kind {
	case cmdWait:
		c.waitLeft = cmd.duration
	case cmdFade:
		c.busy = true
		c.d.Fade(cmd.alpha, cmd.duration, c.release)
	case cmdPanToView:
		c.busy = true
		c.d.PanToStoredView(cmd.name, cmd.duration, c.release)
	case cmdFadeToView:
		snap, ok := c.d.Views().Get(cmd.name)
		if !ok {
			return
		}
		c.busy = true
		c.d.FadeToView(snap, cmd.duration, c.release)
	case cmdPanPath:
		views := make([]obj.View, 0, len(cmd.names))
		for _, name := range cmd.names {
			if snap, ok := c.d.Views().Get(name); ok {
				views = append(views, snap)
			}
		}
		if len(views) == 0 {
			return
		}
		c.busy = true
		c.d.PanToPath(views, cmd.duration, c.release)
	}
}

func (c *Cutscene) release() {
	c.busy = false
}

func (c *Cutscene) addFade(args ...tengo.Object) (tengo.Object, error) {
	alpha, dur, err := twoFloats("fade", args)
	if err != nil {
		return nil, err
	}
	c.cmds = append(c.cmds, command{kind: cmdFade, alpha: alpha, duration: dur})
	return tengo.UndefinedValue, nil
}

func (c *Cutscene) addPanToView(args ...tengo.Object) (tengo.Object, error) {
	name, dur, err := nameAndFloat("pan_to_view", args)
	if err != nil {
		return nil, err
	}
	c.cmds = append(c.cmds, command{kind: cmdPanToView, name: name, duration: dur})
	return tengo.UndefinedValue, nil
}

func (c *Cutscene) addFadeToView(args ...tengo.Object) (tengo.Object, error) {
	name, dur, err := nameAndFloat("fade_to_view", args)
	if err != nil {
		return nil, err
	}
	c.cmds = append(c.cmds, command{kind: cmdFadeToView, name: name, duration: dur})
	return tengo.UndefinedValue, nil
}

func (c *Cutscene) addPanPath(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	arr, ok := args[0].(*tengo.Array)
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "names", Expected: "array", Found: args[0].TypeName()}
	}
	names := make([]string, 0, len(arr.Value))
	for _, el := range arr.Value {
		name, ok := tengo.ToString(el)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "names element", Expected: "string", Found: el.TypeName()}
		}
		names = append(names, name)
	}
	dur, ok := tengo.ToFloat64(args[1])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "duration", Expected: "float", Found: args[1].TypeName()}
	}
	c.cmds = append(c.cmds, command{kind: cmdPanPath, names: names, duration: dur})
	return tengo.UndefinedValue, nil
}

func (c *Cutscene) addWait(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	dur, ok := tengo.ToFloat64(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "seconds", Expected: "float", Found: args[0].TypeName()}
	}
	c.cmds = append(c.cmds, command{kind: cmdWait, duration: dur})
	return tengo.UndefinedValue, nil
}

func twoFloats(fn string, args []tengo.Object) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, tengo.ErrWrongNumArguments
	}
	a, ok := tengo.ToFloat64(args[0])
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: fn + " arg 1", Expected: "float", Found: args[0].TypeName()}
	}
	b, ok := tengo.ToFloat64(args[1])
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: fn + " arg 2", Expected: "float", Found: args[1].TypeName()}
	}
	return a, b, nil
}

func nameAndFloat(fn string, args []tengo.Object) (string, float64, error) {
	if len(args) != 2 {
		return "", 0, tengo.ErrWrongNumArguments
	}
	name, ok := tengo.ToString(args[0])
	if !ok {
		return "", 0, tengo.ErrInvalidArgumentType{Name: fn + " name", Expected: "string", Found: args[0].TypeName()}
	}
	dur, ok := tengo.ToFloat64(args[1])
	if !ok {
		return "", 0, tengo.ErrInvalidArgumentType{Name: fn + " duration", Expected: "float", Found: args[1].TypeName()}
	}
	return name, dur, nil
}
