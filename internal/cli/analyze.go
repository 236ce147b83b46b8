package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repolens/repolens/pkg/analysis"
	"github.com/repolens/repolens/pkg/deps"
	"github.com/repolens/repolens/pkg/deps/languages"
	"github.com/repolens/repolens/pkg/github"
)

func (c *CLI) analyzeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <owner/repo>",
		Short: "Run a one-shot repository analysis",
		Long:  `Fetches repository data from the GitHub API and prints a summary of languages, commit activity, dependencies, file structure, and README completeness.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := github.ParseRepoRef(args[0])
			if err != nil {
				return err
			}
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd, owner, repo, cfg, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw analysis as JSON")
	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command, owner, repo string, cfg Config, asJSON bool) error {
	ctx := cmd.Context()
	client := github.NewClient(cfg.Token)
	analyzer := deps.NewAnalyzer(client, languages.Parsers()...)

	p := newProgress(c.Logger)

	repoData, err := client.Repository(ctx, owner, repo)
	if err != nil {
		return err
	}
	commits, err := client.Commits(ctx, owner, repo, cfg.CommitLimit)
	if err != nil {
		return err
	}
	langBytes := client.Languages(ctx, owner, repo)
	readme, _ := client.Readme(ctx, owner, repo)
	tree, treeSize := client.Tree(ctx, owner, repo)
	depReport := analyzer.Analyze(ctx, owner, repo)

	p.done(fmt.Sprintf("Analyzed %s/%s", owner, repo))

	langReport := analysis.Languages(langBytes)
	commitReport := analysis.Commits(commits)
	structReport := analysis.FileStructure(tree, treeSize)
	readmeReport := analysis.Readme(readme)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"repository":      repoData,
			"languages":       langReport,
			"commits":         commitReport,
			"dependencies":    depReport,
			"file_structure":  structReport,
			"readme_analysis": readmeReport,
		})
	}

	printSection(fmt.Sprintf("%s/%s", owner, repo))
	if desc, ok := repoData["description"].(string); ok && desc != "" {
		printDetail("%s", desc)
	}
	if stars, ok := repoData["stargazers_count"].(float64); ok {
		printKeyValue("stars", StyleNumber.Render(fmt.Sprintf("%.0f", stars)))
	}
	printKeyValue("primary language", langReport.PrimaryLanguage)

	printSection("Commits")
	printKeyValue("analyzed", fmt.Sprintf("%d", commitReport.TotalCommits))
	printKeyValue("per day", fmt.Sprintf("%.2f", commitReport.AvgCommitsPerDay))
	for _, author := range commitReport.TopAuthors {
		printDetail("%s (%d)", author.Name, author.CommitCount)
	}

	printSection("Dependencies")
	if len(depReport.PackageManagers) == 0 {
		printWarning("no manifest files found")
	} else {
		printKeyValue("manifests", strings.Join(depReport.PackageManagers, ", "))
		printKeyValue("total", fmt.Sprintf("%d", depReport.TotalDependencies))
	}

	printSection("Files")
	printKeyValue("files", fmt.Sprintf("%d", structReport.FileCount))
	printKeyValue("directories", fmt.Sprintf("%d", structReport.DirectoryCount))

	printSection("README")
	if readmeReport == nil {
		printError("no README found")
	} else {
		printSuccess("%d words, %d headers", readmeReport.WordCount, readmeReport.HeaderCount)
	}
	return nil
}
