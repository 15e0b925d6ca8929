package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bft-labs/framecache/pkg/framecache"
)

func newInspectCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <descriptor>...",
		Short: "List the frames defined by one or more atlas descriptors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := a.newCache()
			if err != nil {
				return err
			}
			results, err := a.loadAll(cmd.Context(), cache, args)
			if err != nil {
				return err
			}

			views := frameViews(cache)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			writeSummary(out, results)
			writeFrameTable(out, views)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print frames as JSON")
	return cmd
}

// frameView is the printable form of a cached frame.
type frameView struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases,omitempty"`
	Source       string   `json:"source,omitempty"`
	Texture      string   `json:"texture"`
	Rect         string   `json:"rect"`
	Offset       string   `json:"offset"`
	OriginalSize string   `json:"original_size"`
	Rotated      bool     `json:"rotated"`
}

func frameViews(cache *framecache.Cache) []frameView {
	names := cache.Names()
	views := make([]frameView, 0, len(names))
	for _, name := range names {
		if v, ok := viewOf(cache, name); ok {
			views = append(views, v)
		}
	}
	return views
}

// viewOf describes the frame registered under name or one of its aliases.
func viewOf(cache *framecache.Cache, name string) (frameView, bool) {
	canonical, ok := cache.Resolve(name)
	if !ok {
		return frameView{}, false
	}
	f, ok := cache.GetFrame(canonical)
	if !ok {
		return frameView{}, false
	}
	source, _ := cache.SourceOf(canonical)
	return frameView{
		Name:         canonical,
		Aliases:      cache.AliasesOf(canonical),
		Source:       source,
		Texture:      f.Texture().Key(),
		Rect:         f.Rect().String(),
		Offset:       f.Offset().String(),
		OriginalSize: f.OriginalSize().String(),
		Rotated:      f.Rotated(),
	}, true
}

func writeSummary(w io.Writer, results []framecache.LoadResult) {
	for _, res := range results {
		size := "-"
		if res.Texture != nil && res.Texture.Bytes() > 0 {
			size = humanize.IBytes(uint64(res.Texture.Bytes()))
		}
		texture := "-"
		if res.Texture != nil {
			texture = res.Texture.Key()
		}
		fmt.Fprintf(w, "%s: %d frames, %d aliases, %d skipped, texture %s (%s)\n",
			res.Source, res.Added, res.Aliases, len(res.Warnings), texture, size)
	}
	fmt.Fprintln(w)
}

func writeFrameTable(w io.Writer, views []frameView) {
	var (
		headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Left)
		cellStyle   = lipgloss.NewStyle().Align(lipgloss.Left)
	)

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		aliases := "-"
		if len(v.Aliases) > 0 {
			aliases = fmt.Sprint(v.Aliases)
		}
		rows = append(rows, []string{
			v.Name, v.Rect, v.Offset, v.OriginalSize, strconv.FormatBool(v.Rotated), aliases,
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(2)
			}
			return style
		}).
		Headers("NAME", "RECT", "OFFSET", "SIZE", "ROTATED", "ALIASES").
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(w, t)
}
