package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteResult writes one line per snapshot with the occupancy counts
// comma-joined ("0" for a tick without active servers), followed by the
// total cost on a final line with no trailing newline.
func WriteResult(w io.Writer, snapshots [][]int, totalCost int64) error {
	bw := bufio.NewWriter(w)
	for _, snap := range snapshots {
		if _, err := bw.WriteString(formatSnapshot(snap) + "\n"); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}
	if _, err := bw.WriteString(strconv.FormatInt(totalCost, 10)); err != nil {
		return fmt.Errorf("writing total cost: %w", err)
	}
	return bw.Flush()
}

func formatSnapshot(snap []int) string {
	if len(snap) == 0 {
		return "0"
	}
	parts := make([]string, len(snap))
	for i, n := range snap {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// SaveResultFile writes the result to path, replacing any existing file.
func SaveResultFile(path string, snapshots [][]int, totalCost int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return WriteResult(f, snapshots, totalCost)
}

// WriteInput writes an Input in the format ReadInput accepts.
func WriteInput(w io.Writer, in *Input) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", in.TaskDuration, in.ServerCapacity)
	for _, n := range in.Arrivals {
		fmt.Fprintf(bw, "%d\n", n)
	}
	return bw.Flush()
}

// SaveInputFile writes an Input to path, replacing any existing file.
func SaveInputFile(path string, in *Input) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating input file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()
	return WriteInput(f, in)
}
