package selection

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pagepack/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Console is the interactive Service backed by a terminal. All items
// start approved; the operator either accepts the full set with an
// empty line or types the numbers to keep.
type Console struct {
	In  io.Reader
	Out io.Writer
}

func (c Console) Choose(ctx context.Context, items []string) ([]int, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(c.Out)
	t.AppendHeader(table.Row{"#", "resource"})
	for i, item := range items {
		t.AppendRow(table.Row{i + 1, item})
	}
	t.Render()

	fmt.Fprint(c.Out, "numbers to include (e.g. 1 3 4), empty for all: ")
	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		indices := make([]int, len(items))
		for i := range items {
			indices[i] = i
		}
		return indices, nil
	}

	var indices []int
	for _, field := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ','
	}) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(items) {
			fmt.Fprintf(c.Out, "ignoring '%s'\n", field)
			continue
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

// PromptName asks the operator for the package display name until a
// valid one is entered.
func PromptName(in io.Reader, out io.Writer) (string, error) {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "package name: ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		name := strings.TrimSpace(line)
		if textutil.ValidVisibleName(name) {
			return name, nil
		}
		fmt.Fprintln(out, "names may only contain letters, digits, spaces and hyphens")
		if err == io.EOF {
			return "", fmt.Errorf("no valid name entered")
		}
	}
}
