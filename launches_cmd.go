package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ztrade/launchweek/internal/textclip"
	"github.com/ztrade/launchweek/launch"
)

func launchesCmd() *cobra.Command {
	var (
		query  string
		status string
	)
	cmd := &cobra.Command{
		Use:   "launches",
		Short: "List launches with optional search and status filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := launch.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			svc, closeStore, err := openService(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			all, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			printLaunches(cmd.OutOrStdout(), launch.Filter(all, query, filter), len(all))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search title, description and owner")
	cmd.Flags().StringVarP(&status, "status", "s", "All", "status filter: All, Planning, In Progress, Ready, Shipped")
	return cmd
}

func printLaunches(w io.Writer, launches []launch.Launch, total int) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Showing %d of %d launches", len(launches), total)))
	if len(launches) == 0 {
		fmt.Fprintln(w, subtleStyle.Render("No launches match the current filters."))
		return
	}

	row := func(cols ...string) string {
		widths := []int{36, 32, 11, 12, 16, 5}
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = lipgloss.NewStyle().Width(widths[i]).MaxWidth(widths[i]).Render(c)
		}
		return strings.Join(cells, " ")
	}

	fmt.Fprintln(w, headerStyle.Render(row("ID", "TITLE", "STATUS", "DATE", "OWNER", "READY")))
	for _, l := range launches {
		date := "-"
		if l.LaunchDate != nil {
			date = l.LaunchDateString()
		}
		fmt.Fprintln(w, row(
			l.ID,
			textclip.Runes(l.Title, 32, "…"),
			renderStatus(l.Status),
			date,
			textclip.Runes(l.Owner, 16, "…"),
			fmt.Sprintf("%d%%", l.Progress()),
		))
	}
}

func activityCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent activity, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := openService(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			entries, err := svc.RecentActivity(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printActivity(cmd.OutOrStdout(), entries, time.Now())
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", launch.DefaultActivityLimit, "maximum entries")
	return cmd
}

func printActivity(w io.Writer, entries []launch.Activity, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, subtleStyle.Render("No recent activity"))
		return
	}
	for _, a := range entries {
		line := titleStyle.Render(a.UserName) + " " + a.Action
		if title, ok := a.Details["launch_title"].(string); ok && title != "" {
			line += " " + title
		}
		fmt.Fprintln(w, line+" "+subtleStyle.Render("· "+launch.RelativeTime(a.CreatedAt, now)))
	}
}
