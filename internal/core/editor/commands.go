package editor

import (
	"strings"

	"github.com/colonyops/cic/internal/core/action"
)

// ParsedCommand is a command-line input split into name and arguments.
type ParsedCommand struct {
	Name string
	Args []string
}

// ParseCommandInput splits input like ":w out.csv" into a lowercased name and
// its whitespace separated arguments. The leading ':' is optional.
func ParseCommandInput(input string) ParsedCommand {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, ":")

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return ParsedCommand{}
	}

	return ParsedCommand{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
	}
}

type lineCommand func(args []string) []action.Action

var lineCommands = map[string]lineCommand{
	"w":      save,
	"write":  save,
	"q":      quit,
	"quit":   quit,
	"wq":     saveAndQuit,
	"x":      saveAndQuit,
	"addcol": single(action.AddColAfter()),
	"delcol": single(action.DeleteCol()),
	"addrow": single(action.AddRowAfter()),
	"delrow": single(action.DeleteRow()),
}

// ParseLine expands command-line input into actions. Unrecognised input
// yields no actions.
func ParseLine(input string) []action.Action {
	cmd := ParseCommandInput(input)
	fn, ok := lineCommands[cmd.Name]
	if !ok {
		return nil
	}
	return fn(cmd.Args)
}

func save(args []string) []action.Action {
	return []action.Action{action.Save(firstArg(args))}
}

func quit([]string) []action.Action {
	return []action.Action{action.Quit()}
}

func saveAndQuit(args []string) []action.Action {
	return []action.Action{action.Save(firstArg(args)), action.Quit()}
}

func single(a action.Action) lineCommand {
	return func([]string) []action.Action { return []action.Action{a} }
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
