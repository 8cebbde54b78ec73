package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/assets"
	"github.com/folio-dev/folio/internal/progress"
)

var minifyCmd = &cobra.Command{
	Use:   "minify",
	Short: "Minify the site's stylesheets next to their sources",
	Long: `Minifies every stylesheet under the static directory that matches the
assets.include patterns and none of assets.exclude, writing name.min.css
beside each source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		include, exclude := cfg.Assets.Include, cfg.Assets.Exclude
		if len(include) == 0 {
			include = assets.DefaultInclude
		}
		if len(exclude) == 0 {
			exclude = assets.DefaultExclude
		}

		files, err := assets.Find(cfg.StaticDir, include, exclude)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintf(os.Stderr, "No stylesheets found under %s\n", cfg.StaticDir)
			return nil
		}

		rep := progress.NewReporter("minify")
		rep.Start(len(files))
		results := make([]assets.Result, 0, len(files))
		var failed int
		for i, path := range files {
			res, err := assets.MinifyFile(path)
			if err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "\n  %s: %v\n", path, err)
			} else {
				results = append(results, res)
			}
			rep.Update(i+1, filepath.Base(path))
		}
		rep.Finish()

		renderMinifySummary(os.Stdout, cfg.StaticDir, results)
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(files))
		}
		return nil
	},
}

func renderMinifySummary(w io.Writer, root string, results []assets.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Original", "Minified", "Saved"})

	var before, after int64
	for _, r := range results {
		name, err := filepath.Rel(root, r.Source)
		if err != nil {
			name = r.Source
		}
		t.AppendRow(table.Row{
			filepath.ToSlash(name),
			humanize.Bytes(uint64(r.OriginalSize)),
			humanize.Bytes(uint64(r.MinifiedSize)),
			fmt.Sprintf("%.1f%%", r.Percent()),
		})
		before += r.OriginalSize
		after += r.MinifiedSize
	}
	total := assets.Result{OriginalSize: before, MinifiedSize: after}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(results)),
		humanize.Bytes(uint64(before)),
		humanize.Bytes(uint64(after)),
		fmt.Sprintf("%.1f%%", total.Percent()),
	})
	t.Render()
}

func init() {
	rootCmd.AddCommand(minifyCmd)
}
