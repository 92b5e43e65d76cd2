package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seokit/toolkit/domain"
	"seokit/toolkit/infra"
)

// readText junta os argumentos; sem argumentos (ou "-") lê a entrada padrão.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func rewriteCmd(g *globalFlags) *cobra.Command {
	var level string

	c := &cobra.Command{
		Use:   "rewrite [text...]",
		Short: "Rewrite an article (light, medium or heavy)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			res, err := newToolkit(cfg).Rewrite().Run(cmd.Context(), domain.RewriteRequest{Text: text, Level: domain.RewriteLevel(level)})
			if err != nil {
				return err
			}
			return g.emit(cmd.OutOrStdout(), res, "Rewritten ("+level+")", []row{
				kv("readability", fmt.Sprintf("%.1f", res.Metrics[domain.MetricReadability])),
				kv("uniqueness", fmt.Sprintf("%.0f%%", res.Metrics[domain.MetricUniqueness])),
				kv("output", res.Output),
			})
		},
	}
	c.Flags().StringVarP(&level, "level", "l", string(domain.LevelMedium), "light, medium or heavy")
	return c
}

func reverseCmd(g *globalFlags) *cobra.Command {
	var mode string

	c := &cobra.Command{
		Use:   "reverse [text...]",
		Short: "Write text backwards",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			text = strings.TrimRight(text, "\r\n")
			res, err := newToolkit(cfg).Reverse().Run(cmd.Context(), domain.ReverseRequest{Text: text, Mode: domain.ReverseMode(mode)})
			if err != nil {
				return err
			}
			return g.emit(cmd.OutOrStdout(), res, "Reversed ("+mode+")", []row{kv("output", res.Output)})
		},
	}
	c.Flags().StringVarP(&mode, "mode", "m", string(domain.ReverseCharacters), "characters, word-characters or word-order")
	return c
}

func canonicalCmd(g *globalFlags) *cobra.Command {
	opts := domain.DefaultURLOptions()

	c := &cobra.Command{
		Use:   "canonical <url>",
		Short: "Rewrite a URL into its canonical, SEO friendly form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			res, err := newToolkit(cfg).CanonicalURL().Run(cmd.Context(), domain.CanonicalURLRequest{URL: args[0], Options: &opts})
			if err != nil {
				return err
			}
			return g.emit(cmd.OutOrStdout(), res, "Canonical URL", []row{
				kv("original", res.Original),
				kv("canonical", res.Canonical),
				kv("changed", res.Changed),
			})
		},
	}
	c.Flags().BoolVar(&opts.RemoveParameters, "remove-parameters", opts.RemoveParameters, "fold query parameters into path segments")
	c.Flags().BoolVar(&opts.UseHyphens, "hyphens", opts.UseHyphens, "replace _, + and spaces with -")
	c.Flags().BoolVar(&opts.ForceLowercase, "lowercase", opts.ForceLowercase, "lowercase the path")
	c.Flags().BoolVar(&opts.RemoveExtensions, "remove-extensions", opts.RemoveExtensions, "drop .html, .php and similar")
	c.Flags().BoolVar(&opts.AddTrailingSlash, "trailing-slash", opts.AddTrailingSlash, "end the path with /")
	return c
}

func readabilityCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "readability [text...]",
		Short: "Score how easy a text is to read (0-100)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			res, err := newToolkit(cfg).Readability().Run(cmd.Context(), domain.ReadabilityRequest{Text: text})
			if err != nil {
				return err
			}
			return g.emit(cmd.OutOrStdout(), res, "Readability", []row{
				kv("score", fmt.Sprintf("%.1f", res.Score)),
				kv("words", res.Words),
				kv("sentences", res.Sentences),
			})
		},
	}
}

func hashtagsCmd(g *globalFlags) *cobra.Command {
	var (
		platform string
		maxTags  int
		popular  bool
	)

	c := &cobra.Command{
		Use:   "hashtags [text...]",
		Short: "Generate hashtags for a social platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			res, err := newToolkit(cfg).Hashtags().Run(cmd.Context(), domain.HashtagRequest{
				Text:           text,
				HashtagOptions: domain.HashtagOptions{Platform: domain.Platform(platform), Max: maxTags, IncludePopular: popular},
			})
			if err != nil {
				return err
			}
			return g.emit(cmd.OutOrStdout(), res, "Hashtags for "+string(res.Platform), []row{
				kv("count", res.Generated),
				kv("tags", strings.Join(res.Tags, " ")),
			})
		},
	}
	c.Flags().StringVarP(&platform, "platform", "p", string(domain.PlatformInstagram), "instagram, twitter, tiktok, linkedin, youtube or facebook")
	c.Flags().IntVarP(&maxTags, "max", "n", domain.DefaultHashtagMax, "maximum number of tags (up to 30)")
	c.Flags().BoolVar(&popular, "popular", false, "mix in popular tags for the platform")
	return c
}

func earningsCmd(g *globalFlags) *cobra.Command {
	var in domain.EarningsInput

	c := &cobra.Command{
		Use:   "earnings",
		Short: "Estimate YouTube earnings from daily views and CPM",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			res, err := newToolkit(cfg).Earnings().Run(cmd.Context(), in)
			if err != nil {
				return err
			}
			money := func(r domain.EarningsRange) string { return fmt.Sprintf("$%.2f - $%.2f", r.Low, r.High) }
			return g.emit(cmd.OutOrStdout(), res, "YouTube earnings", []row{
				kv("daily views", res.DailyViews),
				kv("cpm", fmt.Sprintf("$%.2f - $%.2f", res.CPMLow, res.CPMHigh)),
				kv("daily", money(res.Daily)),
				kv("monthly", money(res.Monthly)),
				kv("yearly", money(res.Yearly)),
			})
		},
	}
	c.Flags().StringVar(&in.DailyViews, "views", "", "daily views (required)")
	c.Flags().StringVar(&in.CPMLow, "cpm-low", "", "low CPM in USD (default 0.25)")
	c.Flags().StringVar(&in.CPMHigh, "cpm-high", "", "high CPM in USD (default 4.00)")
	_ = c.MarkFlagRequired("views")
	return c
}

func authorityCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "authority <domain> [domain...]",
		Short: "Check domain authority (simulated); several domains run in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			res, err := newToolkit(cfg).BulkAuthority().Run(cmd.Context(), domain.BulkAuthorityRequest{Domains: args})
			if err != nil {
				return err
			}
			var rows []row
			for _, a := range res.Results {
				rows = append(rows, kv(a.Domain, fmt.Sprintf("DA %d  PA %d  spam %d%%  %s", a.DA, a.PA, a.SpamScore, a.Tier)))
			}
			return g.emit(cmd.OutOrStdout(), res, "Domain authority", rows)
		},
	}
}

func backlinksCmd(g *globalFlags) *cobra.Command {
	var xlsxPath string

	c := &cobra.Command{
		Use:   "backlinks <domain>",
		Short: "Show a (simulated) backlink report, optionally saving it as XLSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			rep, err := newToolkit(cfg).Backlinks().Run(cmd.Context(), domain.DomainRequest{Domain: args[0]})
			if err != nil {
				return err
			}
			if xlsxPath != "" {
				if err := saveXLSX(xlsxPath, rep); err != nil {
					return err
				}
			}
			return g.emit(cmd.OutOrStdout(), rep, "Backlinks for "+rep.Domain, []row{
				kv("total", rep.Total),
				kv("dofollow", rep.DoFollow),
				kv("nofollow", rep.NoFollow),
				kv("referring domains", rep.ReferringDomains),
			})
		},
	}
	c.Flags().StringVarP(&xlsxPath, "xlsx", "o", "", "write the report to this .xlsx file")
	return c
}

func saveXLSX(path string, rep domain.BacklinkReport) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return infra.WriteBacklinksXLSX(f, rep)
}

func userAgentCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "useragent [user-agent]",
		Short: "Parse a User-Agent string",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			ua, err := readText(cmd, args)
			if err != nil {
				return err
			}
			info, err := newToolkit(cfg).UserAgent().Run(cmd.Context(), domain.UserAgentRequest{UserAgent: ua})
			if err != nil {
				return err
			}
			return g.emit(cmd.OutOrStdout(), info, "User agent", []row{
				kv("browser", strings.TrimSpace(info.Browser+" "+info.BrowserVersion)),
				kv("engine", info.Engine),
				kv("os", strings.TrimSpace(info.OS+" "+info.OSVersion)),
				kv("device", info.Device),
				kv("bot", info.Bot),
			})
		},
	}
}
