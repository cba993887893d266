// Package lua loads toolbar commands from Lua scripts. A script evaluates
// to a table describing the command:
//
//	return {
//	    name = "shout",
//	    align = "left",
//	    run = function(selected)
//	        return string.upper(selected)
//	    end,
//	}
//
// run receives the selected text and returns the replacement, optionally
// followed by relative selection start and end offsets.
package lua

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/markpane/markpane/internal/decorate"
	"github.com/markpane/markpane/internal/plugin"
)

// Errors returned when loading a command script.
var (
	ErrNotATable = errors.New("script must return a table")
	ErrNoName    = errors.New("command table is missing a name")
	ErrNoRun    = errors.New("command table is missing a run function")
	ErrBadAlign = errors.New(`align must be "left" or "right"`)
)

// Command is a toolbar command backed by a Lua script. The underlying Lua
// state is not goroutine-safe; a mutex serializes all calls into it.
type Command struct {
	mu    sync.Mutex
	state *lua.LState
	name  string
	align plugin.Alignment
	run   *lua.LFunction
}

// Load compiles and evaluates source, returning the command it declares.
func Load(source string) (*Command, error) {
	L := lua.NewState()
	sandbox(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("evaluating command script: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		L.Close()
		return nil, ErrNotATable
	}

	cmd := &Command{state: L, align: plugin.AlignLeft}

	if name, ok := tbl.RawGetString("name").(lua.LString); ok {
		cmd.name = string(name)
	}
	if cmd.name == "" {
		L.Close()
		return nil, ErrNoName
	}

	switch align := tbl.RawGetString("align"); align {
	case lua.LNil, lua.LString("left"):
	case lua.LString("right"):
		cmd.align = plugin.AlignRight
	default:
		L.Close()
		return nil, ErrBadAlign
	}

	run, ok := tbl.RawGetString("run").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNoRun
	}
	cmd.run = run

	return cmd, nil
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.name
}

// Descriptor adapts the command for registry registration.
func (c *Command) Descriptor() plugin.Descriptor {
	return plugin.Descriptor{
		Name:  c.name,
		Align: c.align,
		Apply: c.apply,
	}
}

// Close releases the Lua state. The command must not be applied afterwards.
func (c *Command) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != nil {
		c.state.Close()
		c.state = nil
	}
}

// apply invokes the script's run function. Script failures degrade to the
// unchanged selection; toolbar dispatch has nowhere to report an error.
func (c *Command) apply(selected string, _ json.RawMessage) decorate.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return decorate.Result{Text: selected}
	}

	L := c.state
	base := L.GetTop()
	L.Push(c.run)
	L.Push(lua.LString(selected))
	if err := L.PCall(1, lua.MultRet, nil); err != nil {
		L.SetTop(base)
		return decorate.Result{Text: selected}
	}

	nret := L.GetTop() - base
	defer L.SetTop(base)

	if nret < 1 {
		return decorate.Result{Text: selected}
	}
	text, ok := L.Get(base + 1).(lua.LString)
	if !ok {
		return decorate.Result{Text: selected}
	}

	res := decorate.Result{Text: string(text)}
	if nret >= 3 {
		start, okS := L.Get(base + 2).(lua.LNumber)
		end, okE := L.Get(base + 3).(lua.LNumber)
		if okS && okE {
			res.Selection = &decorate.Span{Start: int(start), End: int(end)}
		}
	}
	return res
}

// sandbox strips globals that would let command scripts reach the host.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "os", "io"} {
		L.SetGlobal(name, lua.LNil)
	}
}
