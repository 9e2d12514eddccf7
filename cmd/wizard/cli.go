package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kentcanonigo/slack-search-generator/internal/di"
	channelService "github.com/kentcanonigo/slack-search-generator/internal/modules/channel/service"
	queryDomain "github.com/kentcanonigo/slack-search-generator/internal/modules/query/domain"
	queryService "github.com/kentcanonigo/slack-search-generator/internal/modules/query/service"
	"github.com/kentcanonigo/slack-search-generator/internal/shared/config"
	"github.com/samber/do/v2"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config, out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "wizard",
		Usage:   "Build Slack search queries and manage saved channels",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Usage: "Path to the channels JSON file (overrides config)"},
		},
		Commands: []*cli.Command{
			queryCmd(cfg),
			channelsCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// container builds the service container, honouring the --data flag.
func container(c *cli.Context, cfg *config.Config) do.Injector {
	local := *cfg
	if path := c.String("data"); path != "" {
		local.StoragePath = ""
		local.ChannelsFile = path
	}
	return di.SetupWithConfig(&local)
}

// queryCmd creates the query command.
func queryCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Print a Slack search query built from the given filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "channel", Aliases: []string{"c"}, Usage: "Channel name, with or without #"},
			&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "Author, with or without @"},
			&cli.StringFlag{Name: "file-type", Aliases: []string{"f"}, Usage: "One of: " + strings.Join(queryDomain.FileTypeNames(), ", ")},
			&cli.StringFlag{Name: "keywords", Aliases: []string{"k"}, Usage: "Free-text keywords"},
			&cli.BoolFlag{Name: "exact", Usage: "Quote multi-word keywords as an exact phrase"},
			&cli.StringFlag{Name: "date-mode", Value: "none", Usage: "One of: " + strings.Join(queryDomain.DateModeNames(), ", ")},
			&cli.StringFlag{Name: "date-format", Value: "full_date", Usage: "One of: " + strings.Join(queryDomain.DateFormatNames(), ", ")},
			&cli.StringFlag{Name: "date", Usage: "Date for --date-mode during (or today/yesterday)"},
			&cli.StringFlag{Name: "after", Usage: "Lower bound for --date-mode range"},
			&cli.StringFlag{Name: "before", Usage: "Upper bound for --date-mode range"},
		},
		Action: func(c *cli.Context) error {
			qs := do.MustInvoke[*queryService.Service](container(c, cfg))
			query, err := qs.Render(queryDomain.RawSelection{
				Channel:     c.String("channel"),
				User:        c.String("user"),
				FileType:    c.String("file-type"),
				Keywords:    c.String("keywords"),
				ExactPhrase: c.Bool("exact"),
				DateMode:    c.String("date-mode"),
				DateFormat:  c.String("date-format"),
				Date:        c.String("date"),
				After:       c.String("after"),
				Before:      c.String("before"),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, query)
			return nil
		},
	}
}

// channelsCmd creates the channels command and its subcommands.
func channelsCmd(cfg *config.Config) *cli.Command {
	channels := func(c *cli.Context) *channelService.Service {
		return do.MustInvoke[*channelService.Service](container(c, cfg))
	}

	return &cli.Command{
		Name:  "channels",
		Usage: "Manage the saved channel list",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved channels",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "sorted", Value: cfg.SortChannels, Usage: "Sort alphabetically"},
				},
				Action: func(c *cli.Context) error {
					names, err := channels(c).Names(c.Bool("sorted"))
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintf(c.App.Writer, "#%s\n", name)
					}
					return nil
				},
			},
			{
				Name:      "add",
				Usage:     "Add a channel",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("add requires exactly one channel name", 2)
					}
					return channels(c).Add(c.Args().First())
				},
			},
			{
				Name:      "rename",
				Usage:     "Rename a channel, keeping its position",
				ArgsUsage: "OLD NEW",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("rename requires the old and new channel names", 2)
					}
					return channels(c).Rename(c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a channel",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("delete requires exactly one channel name", 2)
					}
					return channels(c).Delete(c.Args().First())
				},
			},
		},
	}
}
