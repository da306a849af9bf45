// Package visual renders a terminal walkthrough of the local tasks API and
// the free posts API: request traces, tables and an ASCII bar chart.
package visual

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/labstack/gommon/color"

	"gin-task-forms/internal/client"
	"gin-task-forms/internal/domain"
	"gin-task-forms/internal/feature/freepost"
)

// Config is read from the environment and then overridden by flags.
type Config struct {
	LocalAPIBase string        `env:"LOCAL_API_BASE" envDefault:"http://127.0.0.1:4180/api"`
	FreeAPIURL   string        `env:"FREE_API_URL" envDefault:"https://jsonplaceholder.typicode.com/posts"`
	FreeAPILimit int           `env:"FREE_API_LIMIT" envDefault:"8"`
	Timeout      time.Duration `env:"VISUAL_TIMEOUT" envDefault:"8s"`
	NoColor      bool          `env:"NO_COLOR"`
}

type Demo struct {
	Out   io.Writer
	Tasks *client.Client
	Posts freepost.Fetcher
	Limit int
	C     *color.Color
	Now   func() time.Time
}

func New(cfg Config, out io.Writer) *Demo {
	c := color.New()
	c.SetOutput(out)
	if cfg.NoColor {
		c.Disable()
	}
	return &Demo{
		Out:   out,
		Tasks: client.New(cfg.LocalAPIBase, cfg.Timeout),
		Posts: freepost.NewClient(cfg.FreeAPIURL, cfg.Timeout),
		Limit: cfg.FreeAPILimit,
		C:     c,
		Now:   time.Now,
	}
}

func (d *Demo) println(a ...any) { fmt.Fprintln(d.Out, a...) }

func (d *Demo) Divider() { d.println(d.C.Cyan(strings.Repeat("─", 76))) }

func (d *Demo) Title(text string) {
	d.Divider()
	d.println(d.C.Bold(d.C.Cyan(" " + text)))
	d.Divider()
}

// step prints the request line and, once fn returns, the outcome with timing.
func (d *Demo) step(label, method, target string, fn func() error) error {
	d.println(d.C.Yellow(fmt.Sprintf("→ %s: %s %s", label, method, target)))
	started := d.Now()
	err := fn()
	elapsed := d.Now().Sub(started).Milliseconds()

	status := "ok"
	mark := d.C.Green("✓")
	var ae *client.APIError
	switch {
	case errors.As(err, &ae):
		status, mark = strconv.Itoa(ae.Status), d.C.Red("✗")
	case err != nil:
		status, mark = "error", d.C.Red("✗")
	}
	d.println(fmt.Sprintf("%s %s: status %s (%dms)", mark, label, status, elapsed))
	return err
}

// Run walks both demos. Failures are printed, never returned.
func (d *Demo) Run(ctx context.Context) {
	d.Title("Tasks API + Free API Visual Client")
	d.println("This command makes API requests and prints visual representations in the terminal.")
	d.LocalCRUD(ctx)
	d.FreePosts(ctx)
	d.Divider()
	d.println(d.C.Green("Done."))
	d.Divider()
}

func (d *Demo) LocalCRUD(ctx context.Context) {
	d.Title("Local Tasks API CRUD Visualization")
	base := d.Tasks.BaseURL

	in := client.TaskInput{
		Title:       "CLI Task " + d.Now().UTC().Format("15:04:05"),
		Description: "Created from the visual command-line demo.",
		Status:      domain.StatusTodo,
	}
	var created domain.Task
	err := d.step("Create task", "POST", base+"/tasks", func() (err error) {
		created, err = d.Tasks.CreateTask(ctx, in)
		return err
	})
	if err != nil {
		var ae *client.APIError
		if errors.As(err, &ae) {
			d.println(d.C.Red("Local API returned an error. Skipping local visualization."))
			return
		}
		d.println(d.C.Red("Local API unavailable at " + base))
		d.println(d.C.Yellow("Reason: " + err.Error()))
		d.println(d.C.Yellow("Tip: start the API with: go run ./cmd/api"))
		return
	}

	var items []domain.Task
	if err := d.step("List tasks", "GET", base+"/tasks", func() (err error) {
		items, err = d.Tasks.ListTasks(ctx)
		return err
	}); err == nil {
		d.println(d.C.Bold(fmt.Sprintf("Current local tasks: %d", len(items))))
		d.TaskTable(items[:min(5, len(items))])
	}

	_ = d.step("Delete demo task", "DELETE", fmt.Sprintf("%s/tasks/%d", base, created.ID), func() error {
		_, err := d.Tasks.DeleteTask(ctx, created.ID)
		return err
	})
}

func (d *Demo) FreePosts(ctx context.Context) {
	d.Title("Free API Visualization (JSONPlaceholder)")

	var posts []freepost.Post
	err := d.step("Fetch free posts", "GET", "free posts (limit "+strconv.Itoa(d.Limit)+")", func() (err error) {
		posts, err = d.Posts.Fetch(ctx, d.Limit)
		return err
	})
	if err != nil {
		d.println(d.C.Red("Failed to reach free API."))
		d.println(d.C.Yellow("Reason: " + reason(err)))
		return
	}
	d.PostTable(posts)
	d.UserChart(posts)
}

func reason(err error) string {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Msg + " (" + ue.Err.Error() + ")"
	}
	return err.Error()
}

func (d *Demo) TaskTable(items []domain.Task) {
	tw := tabwriter.NewWriter(d.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTITLE")
	for _, t := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Status, Truncate(t.Title, 42))
	}
	_ = tw.Flush()
}

func (d *Demo) PostTable(posts []freepost.Post) {
	if len(posts) == 0 {
		d.println(d.C.Red("No posts available."))
		return
	}
	tw := tabwriter.NewWriter(d.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tTITLE")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", p.ID, p.UserID, Truncate(p.Title, 48))
	}
	_ = tw.Flush()
}

// UserChart draws one bar per user id, three blocks per post.
func (d *Demo) UserChart(posts []freepost.Post) {
	counts := map[int]int{}
	for _, p := range posts {
		counts[p.UserID]++
	}
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	d.println(d.C.Bold("Posts by user (ASCII chart)"))
	for _, id := range ids {
		n := counts[id]
		d.println(fmt.Sprintf("user %2d | %s %d", id, strings.Repeat("█", n*3), n))
	}
}

// Truncate shortens s to limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}
