// Command ccshell hosts a ccdisplay engine against a real PTY and a real
// host terminal: it spawns a shell, feeds the shell's output through
// Engine.HandleInput, and renders the engine's changed cells back onto
// the host terminal with ANSI escapes. It plays the role the teacher's
// cli.Terminal plays for purfecterm — raw mode, SIGWINCH-driven resize,
// alternate screen — but the driver port it implements is ccdisplay's,
// not purfecterm's.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/ccdisplay/ccdisplay"
)

func main() {
	rows := flag.Int("rows", 0, "virtual screen rows (0 = host terminal size)")
	cols := flag.Int("cols", 0, "virtual screen cols (0 = host terminal size)")
	cgramChars := flag.Int("cgram-chars", 8, "number of user-definable glyphs")
	cgramBytes := flag.Int("cgram-bytes", 8, "bytes per CGRAM glyph bitmap")
	shellPath := flag.String("shell", os.Getenv("SHELL"), "shell to spawn")
	flag.Parse()

	if *shellPath == "" {
		*shellPath = "/bin/sh"
	}

	hostCols, hostRows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		hostCols, hostRows = 80, 24
	}
	if *cols > 0 {
		hostCols = *cols
	}
	if *rows > 0 {
		hostRows = *rows
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	driver := newHostDriver(hostCols)
	params := ccdisplay.Parameters{
		Name:       "ccshell",
		Tabstop:    8,
		NumCntr:    1,
		CntrRows:   hostRows,
		CntrCols:   hostCols,
		VSRows:     hostRows,
		VSCols:     hostCols,
		CGRAMChars: *cgramChars,
		CGRAMBytes: *cgramBytes,
		CGRAMChar0: 0x80,
	}

	engine, err := ccdisplay.RegisterDriver(params, driver, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ccshell: register:", err)
		os.Exit(1)
	}
	defer ccdisplay.UnregisterDriver(engine)

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ccshell: raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	fmt.Print("\x1b[?1049h\x1b[2J\x1b[H")
	defer fmt.Print("\x1b[?1049l")

	cmd := exec.Command(*shellPath)
	cmd.Env = append(os.Environ(), "TERM=linux")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(hostRows), Cols: uint16(hostCols)})
	if err != nil {
		fmt.Fprintln(os.Stderr, "ccshell: pty:", err)
		os.Exit(1)
	}
	defer ptmx.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	go watchResize(sigCh, ptmx)

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			for i := 0; i < n; i++ {
				engine.HandleInput(uint16(buf[i]))
			}
			if err != nil {
				return
			}
		}
	}()

	stdinBuf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(stdinBuf)
		if n > 0 {
			ptmx.Write(stdinBuf[:n])
		}
		if err != nil {
			break
		}
	}

	cmd.Wait()
}

// watchResize keeps the PTY's kernel-reported window size in sync with
// the host terminal, using golang.org/x/sys/unix rather than the
// teacher's cgo ioctl shim.
func watchResize(sigCh <-chan os.Signal, ptmx *os.File) {
	for range sigCh {
		ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
		if err != nil {
			continue
		}
		pty.Setsize(ptmx, &pty.Winsize{Rows: ws.Row, Cols: ws.Col})
	}
}
