// Package script runs line-oriented intent scripts against an engine, so the
// demo page can be driven without a terminal.
//
// One intent per line. A word starting with '#' begins a comment that runs
// to the end of the line; '#' inside a word is ordinary text:
//
//	add 牛乳 # default label otherwise
//	set message 注文#123
//	set username 山田太郎
//	interest music on
//	submit
//	trigger 50ms
//	wait
//	filter アクティブ
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Command is one parsed script line.
type Command struct {
	Line int
	Verb string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Verb
	}
	return c.Verb + " " + strings.Join(c.Args, " ")
}

// arity bounds per verb; max -1 means unbounded.
var verbs = map[string]struct{ min, max int }{
	"add":          {0, -1},
	"remove":       {1, 1},
	"remove-first": {0, 0},
	"clear":        {0, 0},
	"set":          {1, -1},
	"interest":     {2, 2},
	"submit":       {0, 0},
	"reset-form":   {0, 0},
	"open":         {0, 0},
	"close":        {0, 0},
	"trigger":      {0, 1},
	"wait":         {0, 0},
	"reset-delay":  {0, 0},
	"filter":       {0, 1},
	"click":        {0, 0},
	"dblclick":     {0, 0},
}

// Parse reads commands from r. Blank lines and comments are skipped.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		fields := stripComment(strings.Fields(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd := Command{Line: n, Verb: strings.ToLower(fields[0]), Args: fields[1:]}
		if err := validate(cmd); err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// stripComment drops the first field starting with '#' and everything after
// it. A '#' inside a word is kept.
func stripComment(fields []string) []string {
	for i, f := range fields {
		if strings.HasPrefix(f, "#") {
			return fields[:i]
		}
	}
	return fields
}

func validate(cmd Command) error {
	a, ok := verbs[cmd.Verb]
	if !ok {
		return &LineError{Line: cmd.Line, Cmd: cmd.Verb, Err: ErrUnknownVerb}
	}
	if len(cmd.Args) < a.min || (a.max >= 0 && len(cmd.Args) > a.max) {
		return &LineError{Line: cmd.Line, Cmd: cmd.String(), Err: ErrArgs}
	}
	return nil
}
