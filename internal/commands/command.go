// Package commands parses and dispatches the palette commands typed into
// the terminal UI.
package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypeGoal  Type = "goal"
	TypeShow  Type = "show"
	TypeReset Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text     string
	Tomorrow bool
}

type GoalArgs struct {
	Text string
}

type ShowArgs struct {
	Subject string
	On      string
}

type ResetArgs struct {
	Subject string
}

type Command struct {
	Type  Type
	Raw   string
	Add   *AddArgs
	Goal  *GoalArgs
	Show  *ShowArgs
	Reset *ResetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeGoal:
		return parseGoal(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeReset:
		return parseReset(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts a for:today or for:tomorrow modifier anywhere; the rest
// of the words form the task text.
func parseAdd(raw string, args []string) (Command, error) {
	tomorrow := false
	words := make([]string, 0, len(args))
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "for:tomorrow":
			tomorrow = true
		case "for:today":
			tomorrow = false
		default:
			words = append(words, arg)
		}
	}
	text := strings.TrimSpace(strings.Join(words, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text, Tomorrow: tomorrow}}, nil
}

func parseGoal(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goal requires goal text"}
	}
	return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{Text: text}}, nil
}

// parseShow accepts a subject (tasks, goals, stats, calendar) and an
// optional on:YYYY-MM-DD modifier.
func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	switch subject {
	case "tasks", "goals", "stats", "calendar":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown subject: %s", subject)}
	}
	on := ""
	for _, arg := range args[1:] {
		if strings.HasPrefix(strings.ToLower(arg), "on:") {
			on = strings.TrimSpace(arg[len("on:"):])
		}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject, On: on}}, nil
}

// parseReset requires the explicit tasks subject so a bare "reset" cannot
// wipe anything.
func parseReset(raw string, args []string) (Command, error) {
	if len(args) == 0 || strings.ToLower(args[0]) != "tasks" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset requires the tasks subject"}
	}
	return Command{Type: TypeReset, Raw: raw, Reset: &ResetArgs{Subject: "tasks"}}, nil
}
