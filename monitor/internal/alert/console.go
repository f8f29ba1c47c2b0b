package alert

import (
	"fmt"
	"io"
	"os"
	"time"
)

const (
	// blinkCycles is the number of two-frame blink iterations per alert.
	blinkCycles = 6

	// blinkInterval is the pause after each frame.
	blinkInterval = time.Second
)

// Frames drawn in place with a carriage return.
const (
	frameLeft  = "\r* "
	frameRight = "\r *"
)

// Console prints alert messages to a terminal followed by a blinking
// animation of blinkCycles iterations. Each iteration sleeps twice, so one
// alert blocks the caller for about 12 seconds.
type Console struct {
	out   io.Writer
	sleep func(time.Duration) // injectable for tests
	blink bool
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithWriter directs output to w instead of os.Stdout.
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) { c.out = w }
}

// WithSleep replaces time.Sleep between animation frames.
func WithSleep(sleep func(time.Duration)) ConsoleOption {
	return func(c *Console) { c.sleep = sleep }
}

// WithoutBlink prints the message only and skips the animation.
func WithoutBlink() ConsoleOption {
	return func(c *Console) { c.blink = false }
}

// NewConsole returns a Console writing to os.Stdout.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		out:   os.Stdout,
		sleep: time.Sleep,
		blink: true,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Alert prints message and runs the blink animation. Write errors are
// ignored; the animation is cosmetic.
func (c *Console) Alert(message string) {
	fmt.Fprintln(c.out, message)
	if !c.blink {
		return
	}
	for i := 0; i < blinkCycles; i++ {
		c.frame(frameLeft)
		c.frame(frameRight)
	}
}

func (c *Console) frame(s string) {
	io.WriteString(c.out, s) //nolint:errcheck
	c.sleep(blinkInterval)
}
