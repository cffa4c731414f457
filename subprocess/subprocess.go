// Package subprocess runs external utilities in three modes: captured
// output, live line streaming and interactive open with a hard timeout.
//
// Commands run through the platform shell so builtins and pipelines work
// the same way users would type them. Failures never propagate as errors
// to callers; every mode reports success with a boolean and logs the
// diagnostic, because a broken utility must not break the addon.
package subprocess

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/google/uuid"
)

// abortInterval bounds how long a live reader runs past a host abort.
const abortInterval = 100 * time.Millisecond

// shellCommand wraps a command line in the platform shell.
func shellCommand(command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/c", command)
	}
	return exec.Command("sh", "-c", command)
}

// Output runs a command and captures its combined output. Falls back to a
// shell redirect into a temp file when direct capture is refused, which
// happens under some host sandboxes.
func Output(command string) (string, bool) {
	cmd := shellCommand(command)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return string(output), true
	}
	log.Debugf("subprocess: direct capture failed, using temp file: %v", err)
	return outputFallback(command)
}

// outputFallback redirects the command's output into a temp file through
// the shell and reads it back.
func outputFallback(command string) (string, bool) {
	path := filepath.Join(where.Temp(), "subprocess-"+uuid.NewString()+".out")
	defer os.Remove(path)

	redirected := fmt.Sprintf("%s > %s 2>&1", command, path)
	if err := shellCommand(redirected).Run(); err != nil {
		log.Debugf("subprocess: fallback failed: %v", err)
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("subprocess: fallback output unreadable: %v", err)
		return "", false
	}
	return string(data), true
}

// Live runs a command and streams its output lines to the callback as they
// arrive. The host abort signal is polled between lines so a shutdown does
// not leave the child running. Reports whether the command completed.
func Live(command string, callback func(line string)) bool {
	cmd := shellCommand(command)

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		log.Debugf("subprocess: pipe: %v", err)
		return false
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		log.Debugf("subprocess: start %q: %v", command, err)
		return false
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(pipe)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	bridge := host.Current()
	ticker := time.NewTicker(abortInterval)
	defer ticker.Stop()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return cmd.Wait() == nil
			}
			callback(line)
		case <-ticker.C:
			if bridge.Aborted() {
				_ = cmd.Process.Kill()
				// Killing the child closes the pipe; drain until the reader
				// exits so it is never left blocked on a send.
				for range lines {
				}
				_ = cmd.Wait()
				return false
			}
		}
	}
}

// Open runs a command with optional stdin and a mandatory timeout, killing
// the child on expiry. Some utilities keep a helper process alive past
// their parent's read deadline, so the kill is unconditional on timeout.
func Open(command, stdin string, timeout time.Duration) (string, bool) {
	cmd := shellCommand(command)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	type result struct {
		output []byte
		err    error
	}
	results := make(chan result, 1)
	go func() {
		output, err := cmd.CombinedOutput()
		results <- result{output: output, err: err}
	}()

	select {
	case r := <-results:
		if r.err != nil {
			log.Debugf("subprocess: open %q: %v", command, r.err)
			return string(r.output), false
		}
		return string(r.output), true
	case <-time.After(timeout):
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		log.Debugf("subprocess: open %q timed out after %s", command, timeout)
		return "", false
	}
}
