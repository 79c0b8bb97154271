// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/atlas/manifest"
	"github.com/gogpu/atlas/snapshot"
)

var (
	styleLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// newInspectCmd creates the inspect command for printing layout
// summaries.
func newInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print a layout summary with its section table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the document as JSON instead of a table")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, asJSON bool) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	if asJSON {
		return manifest.Encode(cmd.OutOrStdout(), doc, manifest.FormatJSON)
	}

	l, err := doc.Build()
	if err != nil {
		return err
	}
	digest, err := snapshot.Digest(l)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	form := "explicit"
	if doc.Grid != nil {
		g := doc.Grid
		form = fmt.Sprintf("grid %dx%d of %dx%d tiles", g.Columns, g.Rows, g.Tile.X, g.Tile.Y)
	}
	handles := "absent"
	if l.Handles != nil {
		handles = fmt.Sprintf("%d attached", len(l.Handles))
	}

	fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Surface:"), formatPoint(l.Size))
	fmt.Fprintf(out, "%s %d (%s)\n", styleLabel.Render("Sections:"), l.Len(), form)
	fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Handles:"), handles)
	fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Digest:"), digest)

	if l.IsEmpty() {
		return nil
	}

	rows := make([][]string, 0, l.Len())
	for i, r := range l.Sections {
		name := ""
		if doc.Grid == nil && i < len(doc.Sections) {
			name = doc.Sections[i].Name
		}
		uv, _ := l.UV(i)
		rows = append(rows, []string{
			strconv.Itoa(i),
			name,
			formatRect(r),
			formatPoint(r.Size()),
			fmt.Sprintf("(%.3f, %.3f)-(%.3f, %.3f)", uv.U0, uv.V0, uv.U1, uv.V1),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("#", "Name", "Bounds", "Size", "UV").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleLabel
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(out, t)
	return nil
}
