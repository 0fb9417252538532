// Package workload reads simulation inputs, writes simulation results and
// generates synthetic arrival queues.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Input holds the three fields of an input file.
type Input struct {
	TaskDuration   int   // line 1: ticks per task (ttask)
	ServerCapacity int   // line 2: tasks per server (umax)
	Arrivals       []int // remaining lines: arrival count per tick
}

// ReadInput parses the lbsim input format: the task duration on the first
// line, the server capacity on the second, then one arrival count per line.
// Surrounding whitespace and CR line endings are ignored, as are blank lines
// after the last arrival. Any other malformed or missing line is an error
// naming its line number.
func ReadInput(r io.Reader) (*Input, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("input has %d line(s); need task duration and server capacity", len(lines))
	}

	in := &Input{Arrivals: make([]int, 0, len(lines)-2)}
	var err error
	if in.TaskDuration, err = parseLine(lines[0], 1); err != nil {
		return nil, err
	}
	if in.ServerCapacity, err = parseLine(lines[1], 2); err != nil {
		return nil, err
	}
	for i, line := range lines[2:] {
		n, err := parseLine(line, i+3)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("line %d: arrival count must be non-negative, got %d", i+3, n)
		}
		in.Arrivals = append(in.Arrivals, n)
	}
	return in, nil
}

func parseLine(line string, lineNo int) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not an integer", lineNo, line)
	}
	return n, nil
}

// LoadInputFile reads and parses the input file at path.
func LoadInputFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()
	in, err := ReadInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}
