package pingsweep

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/projectdiscovery/subnetping/pkg/types"
	"github.com/shirou/gopsutil/v3/process"
)

// killGracePeriod is how long Wait keeps collecting output after the probe
// process was killed
const killGracePeriod = 2 * time.Second

// ExecProber probes hosts by running the platform ping binary
type ExecProber struct {
	// Binary is the ping executable, "ping" when empty
	Binary string
	// Count is the number of echo requests per probe
	Count int
	// Timeout bounds the whole probe, including process start
	Timeout time.Duration
	// Args overrides the platform argument list
	Args func(ip string, count int) []string
}

// NewExecProber returns a prober running the system ping binary
func NewExecProber(count int, timeout time.Duration) *ExecProber {
	return &ExecProber{
		Binary:  "ping",
		Count:   count,
		Timeout: timeout,
	}
}

// PingArgs returns the ping arguments for the running platform
func PingArgs(ip string, count int) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"-n", strconv.Itoa(count), ip}
	default:
		return []string{"-c", strconv.Itoa(count), ip}
	}
}

// Probe runs ping against ip. On timeout the ping process tree is killed
// and the output gathered so far is classified.
func (p *ExecProber) Probe(ctx context.Context, ip string) (types.Status, error) {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout())
	defer cancel()

	args := PingArgs
	if p.Args != nil {
		args = p.Args
	}

	var output bytes.Buffer
	cmd := exec.CommandContext(probeCtx, p.binary(), args(ip, p.count())...)
	cmd.Stdout = &output
	cmd.Cancel = func() error {
		return killProcessTree(cmd.Process)
	}
	cmd.WaitDelay = killGracePeriod

	if err := cmd.Start(); err != nil {
		return types.StatusDown, fmt.Errorf("%w: %v", ErrProbeUnavailable, err)
	}
	_ = cmd.Wait()

	exited := probeCtx.Err() == nil && cmd.ProcessState != nil && cmd.ProcessState.Exited()
	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	return Classify(output.String(), exited, exitCode), nil
}

func (p *ExecProber) binary() string {
	if p.Binary == "" {
		return "ping"
	}
	return p.Binary
}

func (p *ExecProber) count() int {
	if p.Count <= 0 {
		return DefaultCount
	}
	return p.Count
}

func (p *ExecProber) timeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultTimeout
	}
	return p.Timeout
}

// killProcessTree kills the descendants of proc first so none of them keeps
// the output pipe open, then proc itself
func killProcessTree(proc *os.Process) error {
	if proc == nil {
		return nil
	}

	if root, err := process.NewProcess(int32(proc.Pid)); err == nil {
		killDescendants(root)
	}

	if err := proc.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

func killDescendants(p *process.Process) {
	children, err := p.Children()
	if err != nil {
		return
	}
	for _, child := range children {
		killDescendants(child)
		_ = child.Kill()
	}
}
