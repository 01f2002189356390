package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/jabu/pkg/artifact"
)

// versionsCommand creates the "versions" command, which lists the versions
// of an artifact present in the local repository.
func (c *CLI) versionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "versions <groupId:artifactId>",
		Short:   "List locally available versions of an artifact",
		Example: `  jabu versions org.apache.commons:commons-lang3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := artifact.ParseKey(args[0])
			if err != nil {
				return err
			}
			ws, err := c.newWorkspace()
			if err != nil {
				return err
			}

			versions, ok := ws.local.SortedVersions(coord)
			if !ok || len(versions) == 0 {
				printWarning("No local versions of %s", coord.Key())
				return nil
			}
			for _, v := range versions {
				printLine(v)
			}
			return nil
		},
	}
}

// pathCommand creates the "path" command, which shows where an artifact
// lives locally and remotely.
func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "path <groupId:artifactId:version>",
		Short:   "Show local paths and remote URLs of an artifact",
		Example: `  jabu path org.apache.commons:commons-lang3:3.14.0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := artifact.Parse(args[0])
			if err != nil {
				return err
			}
			ws, err := c.newWorkspace()
			if err != nil {
				return err
			}

			jarURL, err := ws.remote.JarURL(coord)
			if err != nil {
				return err
			}
			pomURL, err := ws.remote.POMURL(coord)
			if err != nil {
				return err
			}

			present := "no"
			if ws.local.Exists(coord) {
				present = "yes"
			}
			printKeyValue("Jar", ws.local.JarPath(coord))
			printKeyValue("POM", ws.local.POMPath(coord))
			printKeyValue("Jar URL", jarURL)
			printKeyValue("POM URL", pomURL)
			printKeyValue("Present", present)
			return nil
		},
	}
}
