package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuanwutong/portfolio/internal/bilingual"
	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/markdown"
	"github.com/yuanwutong/portfolio/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content directory",
	Long: `Fetches every section, list and referenced markdown file the page would
load, and reports missing files, skipped list lines and files no list
refers to. Exits non-zero when anything is wrong.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, fsys := contentSource(cfg)
	rep := progress.NewReporter("Checking content")

	report, err := checkContent(cmd.Context(), src, fsys, cfg.FetchTimeout(), rep)
	if err != nil {
		return err
	}
	report.print(os.Stderr, verbose)
	if !report.ok() {
		return fmt.Errorf("content check failed: %d problem(s)", report.problems())
	}
	return nil
}

// checkReport collects everything wrong with a content tree.
type checkReport struct {
	Checked  []string
	Missing  map[string]string
	Skipped  map[string][]content.ParseIssue
	Orphans  []string
	Projects int
	Posts    int
}

func (r *checkReport) ok() bool { return r.problems() == 0 }

func (r *checkReport) problems() int {
	n := len(r.Missing) + len(r.Orphans)
	for _, issues := range r.Skipped {
		n += len(issues)
	}
	return n
}

func (r *checkReport) print(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "Checked %d files: %d projects, %d posts\n", len(r.Checked), r.Projects, r.Posts)
	if verbose {
		for _, path := range r.Checked {
			fmt.Fprintf(w, "  checked: %s\n", path)
		}
	}
	for _, path := range slices.Sorted(maps.Keys(r.Missing)) {
		fmt.Fprintf(w, "  missing: %s (%s)\n", path, r.Missing[path])
	}
	for _, path := range slices.Sorted(maps.Keys(r.Skipped)) {
		for _, issue := range r.Skipped[path] {
			fmt.Fprintf(w, "  %s:%d: skipped %q: %s\n", path, issue.Line, issue.Text, issue.Reason)
		}
	}
	for _, path := range r.Orphans {
		fmt.Fprintf(w, "  unreferenced: %s\n", path)
	}
}

// checkContent walks the content the page would load. fsys, when non-nil,
// is the local content tree used to look for unreferenced files.
func checkContent(ctx context.Context, src content.Source, fsys fs.FS, timeout time.Duration, rep progress.Reporter) (*checkReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loader := content.NewLoader(src, timeout)
	renderer := markdown.New()
	report := &checkReport{
		Missing: map[string]string{},
		Skipped: map[string][]content.ParseIssue{},
	}

	var projects []content.ProjectRecord
	if raw, ok := fetchChecked(ctx, loader, content.ProjectListPath, report); ok {
		var issues []content.ParseIssue
		projects, issues = content.ParseProjects(raw)
		if len(issues) > 0 {
			report.Skipped[content.ProjectListPath] = issues
		}
	}
	var posts []content.BlogRecord
	if raw, ok := fetchChecked(ctx, loader, content.BlogListPath, report); ok {
		var issues []content.ParseIssue
		posts, issues = content.ParseBlog(raw)
		if len(issues) > 0 {
			report.Skipped[content.BlogListPath] = issues
		}
	}
	report.Projects, report.Posts = len(projects), len(posts)

	paths := []string{content.IntroPath, content.PapersPath, content.AwardsPath, content.FuturePath}
	for _, p := range projects {
		paths = append(paths, p.Path())
	}
	for _, b := range posts {
		paths = append(paths, b.Path())
	}

	rep.Start(len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			rep.Finish()
			return nil, err
		}
		rep.Update(i+1, path)
		raw, ok := fetchChecked(ctx, loader, path, report)
		if !ok {
			continue
		}
		rendered, err := renderer.Render(raw)
		if err != nil {
			report.Missing[path] = fmt.Sprintf("render: %v", err)
			continue
		}
		if _, err := bilingual.Classify(rendered); err != nil {
			report.Missing[path] = fmt.Sprintf("classify: %v", err)
		}
	}
	rep.Finish()

	if fsys != nil {
		orphans, err := content.Orphans(fsys, projects, posts)
		if err != nil {
			return nil, fmt.Errorf("finding unreferenced files: %w", err)
		}
		report.Orphans = orphans
	}
	return report, nil
}

func fetchChecked(ctx context.Context, loader *content.Loader, path string, report *checkReport) (string, bool) {
	report.Checked = append(report.Checked, path)
	raw, err := loader.Fetch(ctx, path)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, fs.ErrNotExist) {
			reason = "does not exist"
		}
		report.Missing[path] = reason
		return "", false
	}
	return raw, true
}
