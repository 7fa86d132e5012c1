package command

import (
	"errors"
	"fmt"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantReply string
		wantOK    bool
	}{
		{
			name:      "member not found",
			err:       ErrMemberNotFound,
			wantReply: "Could not find that member.",
			wantOK:    true,
		},
		{
			name:      "permission denied",
			err:       ErrPermissionDenied,
			wantReply: "You do not have permission to use this command.",
			wantOK:    true,
		},
		{
			name:      "missing argument",
			err:       ErrMissingArgument,
			wantReply: "Please provide the necessary arguments.",
			wantOK:    true,
		},
		{
			name:      "wrapped sentinel still translates",
			err:       fmt.Errorf("%w: token xyz", ErrMemberNotFound),
			wantReply: "Could not find that member.",
			wantOK:    true,
		},
		{
			name:   "exec failure is not translated",
			err:    &ExecError{Op: "kick member", Err: errors.New("api down")},
			wantOK: false,
		},
		{
			name:   "unknown error is not translated",
			err:    errors.New("something else"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, ok := Translate(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("Translate() ok = %v, want %v", ok, tt.wantOK)
			}
			if reply != tt.wantReply {
				t.Errorf("Translate() = %q, want %q", reply, tt.wantReply)
			}
		})
	}
}

func TestExecErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := execErr("fetch ban list", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is(execErr(...), cause) = false, want true")
	}
	if got := err.Error(); got != "fetch ban list: connection reset" {
		t.Errorf("Error() = %q, want %q", got, "fetch ban list: connection reset")
	}
}

func TestExecErrPassesNilThrough(t *testing.T) {
	if err := execErr("anything", nil); err != nil {
		t.Errorf("execErr(nil) = %v, want nil", err)
	}
}
