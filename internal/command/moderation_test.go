package command

import (
	"errors"
	"testing"
)

func TestKickRemovesMemberAndConfirms(t *testing.T) {
	gw := warnGateway()
	mc := newContext(t, gw, "<@42> repeated spam")

	if err := (&KickCommand{}).Run(mc); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if len(gw.Kicked) != 1 || gw.Kicked[0] != "42" {
		t.Errorf("Kicked = %v, want [42]", gw.Kicked)
	}
	if got := gw.LastSent(); got != "Kicked <@42> for: repeated spam" {
		t.Errorf("reply = %q, want %q", got, "Kicked <@42> for: repeated spam")
	}
}

func TestKickWithoutReasonUsesDefault(t *testing.T) {
	gw := warnGateway()
	mc := newContext(t, gw, "troublemaker")

	if err := (&KickCommand{}).Run(mc); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if got := gw.LastSent(); got != "Kicked <@42> for: No reason provided" {
		t.Errorf("reply = %q, want default-reason confirmation", got)
	}
}

func TestKickGatewayFailure(t *testing.T) {
	cause := errors.New("missing permissions")
	gw := warnGateway()
	gw.KickErr = cause
	mc := newContext(t, gw, "<@42>")

	err := (&KickCommand{}).Run(mc)
	var execError *ExecError
	if !errors.As(err, &execError) {
		t.Fatalf("Run() error = %v, want *ExecError", err)
	}
	if len(gw.Sent) != 0 {
		t.Errorf("Sent = %v, want no confirmation after failure", gw.Sent)
	}
}

func TestBanRemovesMemberAndConfirms(t *testing.T) {
	gw := warnGateway()
	mc := newContext(t, gw, "<@42> ban evasion")

	if err := (&BanCommand{}).Run(mc); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if len(gw.Banned) != 1 || gw.Banned[0] != "42" {
		t.Errorf("Banned = %v, want [42]", gw.Banned)
	}
	if got := gw.LastSent(); got != "Banned <@42> for: ban evasion" {
		t.Errorf("reply = %q, want %q", got, "Banned <@42> for: ban evasion")
	}
}

func TestBanUnknownTarget(t *testing.T) {
	gw := warnGateway()
	mc := newContext(t, gw, "nobody")

	err := (&BanCommand{}).Run(mc)
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("Run() error = %v, want ErrMemberNotFound", err)
	}
	if len(gw.Banned) != 0 {
		t.Errorf("Banned = %v, want no calls", gw.Banned)
	}
}
