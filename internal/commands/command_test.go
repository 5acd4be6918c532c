package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"goal read 20 pages", TypeGoal},
		{"show stats on:2025-03-10", TypeShow},
		{"reset tasks", TypeReset},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddModifiers(t *testing.T) {
	cmd, err := Parse("/add pay rent for:tomorrow")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "pay rent" || !cmd.Add.Tomorrow {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}

	cmd, err = Parse("add water plants")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "water plants" || cmd.Add.Tomorrow {
		t.Fatalf("unexpected add args: %+v", cmd.Add)
	}
}

func TestParseShowSubjects(t *testing.T) {
	cmd, err := Parse("show stats on:2025-03-10")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Show.Subject != "stats" || cmd.Show.On != "2025-03-10" {
		t.Fatalf("unexpected show args: %+v", cmd.Show)
	}

	_, err = Parse("show everything")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseResetRequiresSubject(t *testing.T) {
	_, err := Parse("reset")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("bare reset must be rejected, got %v", err)
	}
	_, err = Parse("reset goals")
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("reset goals must be rejected, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "/", "/  "} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show tasks")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
