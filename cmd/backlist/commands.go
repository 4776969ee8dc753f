package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/haukened/backlist/internal/backlist/common/log"
	"github.com/haukened/backlist/internal/backlist/domain"
	"github.com/haukened/backlist/internal/backlist/services/admin"
	"github.com/haukened/backlist/internal/backlist/services/filter"
)

func submissionFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		cli.StringFlag{
			Name:  "type, t",
			Value: domain.SubmissionTrackback.String(),
			Usage: "comment type: comment, pingback or trackback",
		},
		cli.StringFlag{
			Name:  "url, u",
			Usage: "author URL of the submission",
		},
	}
	return append(flags, extra...)
}

// newCLI builds the command tree. Command output goes to out.
func newCLI(app *Application, out io.Writer) *cli.App {
	c := cli.NewApp()
	c.Name = appName
	c.Usage = "whitelist/blacklist filter for trackbacks and pingbacks"
	c.Version = version
	c.Writer = out
	c.Commands = []cli.Command{
		{
			Name:   "check",
			Usage:  "print the disposition for a submission",
			Flags:  submissionFlags(cli.StringFlag{Name: "ip, i", Usage: "author IP of the submission"}),
			Action: app.check,
		},
		{
			Name:      "whitelist",
			Usage:     "append a host or IP to the whitelist",
			ArgsUsage: "HOST",
			Action:    app.addHost(domain.Whitelist),
		},
		{
			Name:      "blacklist",
			Usage:     "append a host or IP to the blacklist",
			ArgsUsage: "HOST",
			Action:    app.addHost(domain.Blacklist),
		},
		{
			Name:      "show",
			Usage:     "print a list, one entry per line",
			ArgsUsage: "whitelist|blacklist",
			Action:    app.show,
		},
		{
			Name:      "self",
			Usage:     "toggle auto-approval of backlinks from the blog's own host",
			ArgsUsage: "on|off",
			Action:    app.self,
		},
		{
			Name:  "init",
			Usage: "seed the blog URL in the settings store",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "blog-url", Value: app.config.BlogURL, Usage: "the blog's own URL"},
			},
			Action: app.seed,
		},
		{
			Name:   "suggest",
			Usage:  "print list actions for a backlink whose host is on neither list",
			Flags:  submissionFlags(cli.Uint64Flag{Name: "id", Usage: "comment ID"}),
			Action: app.suggest,
		},
		{
			Name:   "stats",
			Usage:  "print settings store and list cache counters",
			Action: app.stats,
		},
	}
	return c
}

func submissionFrom(c *cli.Context) (domain.Submission, error) {
	t := domain.ParseSubmissionType(c.String("type"))
	if t == domain.SubmissionUnknown {
		return domain.Submission{}, fmt.Errorf("unknown comment type %q", c.String("type"))
	}
	return domain.Submission{
		Type:      t,
		AuthorURL: c.String("url"),
		AuthorIP:  c.String("ip"),
	}, nil
}

func (app *Application) check(c *cli.Context) error {
	sub, err := submissionFrom(c)
	if err != nil {
		return err
	}
	comment := &domain.Comment{Submission: sub}
	d, err := app.filter.Preprocess(context.Background(), comment)
	if err != nil && !errors.Is(err, filter.ErrRejected) {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s\trule=%s host=%q ip_match=%t\n", d.Disposition, d.Rule, d.Host, d.MatchedIP)
	return err
}

func (app *Application) addHost(name domain.ListName) func(*cli.Context) error {
	return func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%s: expected exactly one HOST argument", name)
		}
		warnings, err := app.admin.AddHost(context.Background(), name, c.Args().First())
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Fprintf(c.App.Writer, "warning: %s: %s\n", w.Entry, w.Reason)
		}
		return nil
	}
}

func (app *Application) show(c *cli.Context) error {
	name, err := domain.ParseListName(c.Args().First())
	if err != nil {
		return err
	}
	entries, err := app.admin.List(context.Background(), name)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintln(c.App.Writer, e)
	}
	for _, w := range admin.Lint(entries) {
		fmt.Fprintf(c.App.Writer, "# warning: %s: %s\n", w.Entry, w.Reason)
	}
	return nil
}

func (app *Application) self(c *cli.Context) error {
	var value string
	switch c.Args().First() {
	case "on":
		value = "true"
	case "off":
		value = ""
	default:
		return fmt.Errorf("self: expected on or off, got %q", c.Args().First())
	}
	if err := app.store.Set(context.Background(), domain.SettingSelfApprove, value); err != nil {
		return err
	}
	log.Info(map[string]any{"enabled": value != ""}, "self_approve_updated")
	return nil
}

func (app *Application) seed(c *cli.Context) error {
	blogURL := c.String("blog-url")
	if blogURL == "" {
		return errors.New("init: no blog URL given and BACKLIST_BLOG_URL is unset")
	}
	if err := app.store.Set(context.Background(), domain.SettingBlogURL, blogURL); err != nil {
		return err
	}
	log.Info(map[string]any{"blog_url": blogURL}, "blog_url_seeded")
	return nil
}

func (app *Application) suggest(c *cli.Context) error {
	sub, err := submissionFrom(c)
	if err != nil {
		return err
	}
	actions, err := app.admin.RowActions(context.Background(), domain.Comment{ID: c.Uint64("id"), Submission: sub})
	if err != nil {
		return err
	}
	for _, a := range actions {
		fmt.Fprintf(c.App.Writer, "%s %s\n", a.List, a.Host)
	}
	return nil
}

func (app *Application) stats(c *cli.Context) error {
	s := app.store.Stats()
	cs := app.cache.Stats()
	fmt.Fprintf(c.App.Writer, "settings: keys=%d version=%d updated=%d\n", s.Keys, s.Version, s.UpdatedUnix)
	fmt.Fprintf(c.App.Writer, "cache: capacity=%d size=%d hits=%d misses=%d evictions=%d\n",
		cs.Capacity, cs.Size, cs.Hits, cs.Misses, cs.Evictions)
	return nil
}
