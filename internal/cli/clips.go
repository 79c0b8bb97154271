// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gogpu/atlas/anim"
)

// newClipsCmd creates the clips command for validating animation clips
// against a layout.
func newClipsCmd() *cobra.Command {
	var layoutPath string

	cmd := &cobra.Command{
		Use:   "clips [file]",
		Short: "Validate animation clips against a layout",
		Long: `Validate a clip set: every frame of every clip must name a section
that exists in the layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClips(cmd, args[0], layoutPath)
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout file the frame indices refer to")

	_ = cmd.MarkFlagRequired("layout")

	return cmd
}

func runClips(cmd *cobra.Command, clipsPath, layoutPath string) error {
	logger := loggerFromContext(cmd.Context())

	set, err := anim.Load(clipsPath)
	if err != nil {
		return err
	}
	l, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}

	if err := set.Validate(l.Len()); err != nil {
		return err
	}

	rows := make([][]string, 0, set.Len())
	for _, c := range set.Clips() {
		loop := "once"
		if c.Loop {
			loop = "loop"
		}
		rows = append(rows, []string{
			c.Name,
			strconv.Itoa(c.Len()),
			strconv.FormatFloat(c.FPS, 'g', -1, 64),
			fmt.Sprintf("%.3fs", c.Duration()),
			loop,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Clip", "Frames", "FPS", "Duration", "Mode").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleLabel
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(cmd.OutOrStdout(), t)

	logger.Infof("%d clips valid against %d sections", set.Len(), l.Len())
	return nil
}
