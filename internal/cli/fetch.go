package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jabu/pkg/artifact"
)

// fetchCommand creates the "fetch" command, which downloads a single artifact.
func (c *CLI) fetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <groupId:artifactId:version>",
		Short: "Download one artifact without its dependencies",
		Example: `  jabu fetch org.apache.commons:commons-lang3:3.14.0
  jabu fetch com.google.guava:guava:33.0.0-jre --repository ./repo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := artifact.Parse(args[0])
			if err != nil {
				return err
			}
			ws, err := c.newWorkspace()
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			if err := ws.resolver.FetchOne(cmd.Context(), coord, ws.remote, printDownload); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %s", coord))

			printSuccess("Fetched %s", StyleTitle.Render(coord.String()))
			printFile(ws.local.JarPath(coord))
			printFile(ws.local.POMPath(coord))
			return nil
		},
	}
}

// resolveCommand creates the "resolve" command, which downloads an artifact
// and every dependency missing from the local repository.
func (c *CLI) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <groupId:artifactId:version>",
		Short: "Download an artifact and its dependencies",
		Long: `Download an artifact, then walk the dependencies declared in each downloaded
POM and download the ones that are not yet in the local repository.`,
		Example: `  jabu resolve org.junit.jupiter:junit-jupiter:5.10.2
  jabu resolve com.squareup.okhttp3:okhttp:4.12.0 --remote https://maven.example.com/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := artifact.Parse(args[0])
			if err != nil {
				return err
			}
			ws, err := c.newWorkspace()
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			stats, err := ws.resolver.ResolveWithStats(cmd.Context(), coord, ws.remote, printDownload)
			if err != nil {
				if stats != nil && len(stats.Fetched) > 0 {
					printWarning("%d artifacts were saved before the failure", len(stats.Fetched))
				}
				return err
			}
			prog.done(fmt.Sprintf("Resolved %s", coord))

			printSuccess("Resolved %s", StyleTitle.Render(coord.String()))
			printDetail("%s downloaded into %s", pluralize(len(stats.Fetched), "artifact"), ws.local.Root())
			return nil
		},
	}
}

// printDownload is the resolver callback announcing each download.
func printDownload(pomURL, jarURL string) {
	printInfo("Downloading %s", StyleLink.Render(jarURL))
	printDetail("%s", pomURL)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return StyleNumber.Render("1") + " " + noun
	}
	return StyleNumber.Render(fmt.Sprint(n)) + " " + noun + "s"
}
