package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewCommandProberPlatforms(t *testing.T) {
	for _, platform := range []string{"linux", "windows", "darwin", "freebsd"} {
		if _, err := NewCommandProber(platform, 0); err != nil {
			t.Errorf("NewCommandProber(%q) unexpected error: %v", platform, err)
		}
	}

	_, err := NewCommandProber("plan9", 0)
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("NewCommandProber(plan9) error = %v, want ErrUnsupportedPlatform", err)
	}
	var perr *PlatformError
	if !errors.As(err, &perr) || perr.Platform != "plan9" {
		t.Errorf("expected PlatformError naming plan9, got %v", err)
	}
}

func TestCommandProberInvocation(t *testing.T) {
	tests := []struct {
		platform string
		wantArgs []string
	}{
		{"windows", []string{"-n", "1", "10.0.0.1"}},
		{"linux", []string{"-c", "1", "10.0.0.1"}},
		{"darwin", []string{"-c", "1", "10.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			prober, err := NewCommandProber(tt.platform, 0)
			if err != nil {
				t.Fatal(err)
			}

			var gotName string
			var gotArgs []string
			calls := 0
			prober.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
				calls++
				gotName, gotArgs = name, args
				return []byte(linuxReply), nil
			}

			if !prober.Probe(context.Background(), "10.0.0.1") {
				t.Error("Probe() = false, want true")
			}
			if calls != 1 {
				t.Errorf("ping invoked %d times, want 1", calls)
			}
			if gotName != "ping" {
				t.Errorf("binary = %q, want ping", gotName)
			}
			if diff := cmp.Diff(tt.wantArgs, gotArgs); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommandProberFailures(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		want   Verdict
	}{
		{"exit status with no reply", linuxNoReply, errors.New("exit status 1"), VerdictUnreachable},
		{"binary missing", "", errors.New("executable file not found"), VerdictAmbiguous},
		{"reply despite exit error", windowsReply, errors.New("exit status 1"), VerdictReachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober, err := NewCommandProber("linux", 0)
			if err != nil {
				t.Fatal(err)
			}
			prober.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
				return []byte(tt.output), tt.err
			}
			if got := prober.Verdict(context.Background(), "10.0.0.1"); got != tt.want {
				t.Errorf("Verdict() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCommandProberTimeout(t *testing.T) {
	prober, err := NewCommandProber("linux", 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	var hadDeadline bool
	prober.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		_, hadDeadline = ctx.Deadline()
		<-ctx.Done()
		return nil, ctx.Err()
	}

	if prober.Probe(context.Background(), "10.0.0.1") {
		t.Error("Probe() = true for a timed out ping")
	}
	if !hadDeadline {
		t.Error("ping context carried no deadline")
	}
}
