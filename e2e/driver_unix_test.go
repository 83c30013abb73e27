//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20       // 1 MiB of scrollback
var binPath = "combobox_e2e" // set by TestMain

// Key sequences as a terminal sends them
const (
	KeyEnter     = "\r"
	KeyCtrlC     = "\x03"
	KeyTab       = "\t"
	KeyBackspace = "\x7f"
	KeyEsc       = "\x1b"
	KeyDown      = "\x1b[B"
	KeyUp        = "\x1b[A"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework runs the binary in a PTY and records everything it draws
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	done      chan error

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

// NewTUITest creates a new TUI test framework instance with its own workspace
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
}

// ConfigPath is an isolated config file inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// WriteFile creates a file in the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) string {
	tf.t.Helper()
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tf.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// StartApp launches the combobox binary with args in a PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	args = append([]string{"--config", tf.ConfigPath()}, args...)
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Dir = tf.workspace

	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace, // isolate $HOME
		"COMBOBOX_LOG_LEVEL=debug",
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.done = make(chan error, 1)
	go func() { tf.done <- tf.cmd.Wait() }()

	tf.startReader()
	return nil
}

func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one key at a time
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// Click sends an SGR left press and release at the zero-based cell (x, y)
func (tf *TUITestFramework) Click(x, y int) error {
	tf.t.Helper()
	return tf.SendKeys(fmt.Sprintf("\x1b[<0;%d;%dM\x1b[<0;%d;%dm", x+1, y+1, x+1, y+1))
}

// Ready waits for the demo page to draw
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.OutputContainsPlain("Select Technologies", 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContainsPlain checks if the normalized output contains text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to exit
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (exited bool, err error) {
	tf.t.Helper()
	select {
	case err = <-tf.done:
		tf.cmd = nil
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// Snapshot returns the current contents of the ring buffer
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// Tail returns the last n bytes of normalized output for failure messages
func (tf *TUITestFramework) Tail(n int) string {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	// Close PTY first to deliver SIGHUP to child process
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		<-tf.done
		tf.cmd = nil
	}
}
