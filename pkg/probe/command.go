package probe

import (
	"context"
	"os/exec"
	"time"

	"github.com/projectdiscovery/gologger"
)

// pingBinary is resolved through PATH on every platform
const pingBinary = "ping"

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandProber probes addresses with the host ping tool.
type CommandProber struct {
	platform string
	timeout  time.Duration
	run      commandRunner
}

// NewCommandProber returns a prober for the given platform (a GOOS style
// name such as "linux" or "windows"). timeout bounds each ping invocation;
// zero leaves it to the tool's own default.
func NewCommandProber(platform string, timeout time.Duration) (*CommandProber, error) {
	if _, err := pingArgs(platform, ""); err != nil {
		return nil, err
	}
	return &CommandProber{
		platform: platform,
		timeout:  timeout,
		run:      runCommand,
	}, nil
}

// Probe runs ping once against address.
func (p *CommandProber) Probe(ctx context.Context, address string) bool {
	return p.Verdict(ctx, address) == VerdictReachable
}

// Verdict runs ping once against address and classifies the output.
func (p *CommandProber) Verdict(ctx context.Context, address string) Verdict {
	args, err := pingArgs(p.platform, address)
	if err != nil {
		return VerdictUnreachable
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	// exit status is not trusted, only the text is
	output, err := p.run(ctx, pingBinary, args...)
	if err != nil {
		gologger.Debug().Msgf("%s %v: %s", pingBinary, args, err)
	}

	verdict := Classify(string(output))
	if verdict == VerdictAmbiguous {
		gologger.Debug().Msgf("unrecognized ping output for %s, counting it as unreachable", address)
	}
	return verdict
}

// pingArgs returns the arguments for exactly one echo request
func pingArgs(platform, address string) ([]string, error) {
	switch platform {
	case "windows":
		return []string{"-n", "1", address}, nil
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return []string{"-c", "1", address}, nil
	default:
		return nil, &PlatformError{Platform: platform}
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
