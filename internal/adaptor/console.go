package adaptor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"airline-reservation/pkg/utils"
)

// Console owns the terminal. All prompt reading and menu printing goes
// through here; services below this layer never touch stdout.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole() *Console {
	return &Console{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

// ReadLine prompts and returns the trimmed input line.
func (c *Console) ReadLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// ReadInt prompts and returns the input as int, or the default when the
// input does not parse.
func (c *Console) ReadInt(prompt string, defaultValue int) int {
	return utils.ParseInt(c.ReadLine(prompt), defaultValue)
}

// Confirm asks a y/n question.
func (c *Console) Confirm(prompt string) bool {
	answer := strings.ToLower(c.ReadLine(prompt + " (y/n): "))
	return answer == "y" || answer == "yes"
}

func (c *Console) Pause() {
	c.ReadLine("Press Enter to continue...")
}

func (c *Console) Clear() {
	fmt.Fprint(c.out, "\033[2J\033[H")
}
