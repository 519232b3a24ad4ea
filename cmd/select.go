package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vimeolb/vimeolb/key"
	"github.com/vimeolb/vimeolb/log"
)

func init() {
	for _, c := range []*cobra.Command{idCmd, urlCmd, htmlCmd} {
		rootCmd.AddCommand(c)
		c.SetOut(os.Stdout)
	}
}

const generatorArgsHelp = `Generators:
  [number] - the video at that index (starting from 0)
  static   - the first video
  random   - a random video
  weekday  - the video for today, 0 being Sunday

When omitted, the configured select.generator is used.`

// idCmd prints the selected video id.
var idCmd = &cobra.Command{
	Use:               "id [generator]",
	Short:             "Print the id of the selected video",
	Long:              "Print the id of the selected video.\n\n" + generatorArgsHelp,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionGenerators,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := newSelector()
		handleErr(err)

		g, err := resolveGenerator(args)
		handleErr(err)

		id, err := s.VideoID(g)
		handleErr(err)

		log.Infof("selected %s via %s", id, g)
		cmd.Println(id)
	},
}

// urlCmd prints the player URL of the selected video.
var urlCmd = &cobra.Command{
	Use:               "url [generator]",
	Short:             "Print the player URL of the selected video",
	Long:              "Print the Vimeo player URL of the selected video.\n\n" + generatorArgsHelp,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionGenerators,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := newSelector()
		handleErr(err)

		g, err := resolveGenerator(args)
		handleErr(err)

		url, err := s.URL(g)
		handleErr(err)

		cmd.Println(url)
	},
}

// htmlCmd prints the responsive embed snippet of the selected video.
var htmlCmd = &cobra.Command{
	Use:   "html [generator]",
	Short: "Print the responsive embed snippet of the selected video",
	Long: `Print a responsive iframe embed snippet of the selected video.

Frameworks:
  bootstrap4 - embed-responsive embed-responsive-{ratio}, default ratio 16by9
  bootstrap5 - ratio ratio-{ratio}, default ratio 16x9

` + generatorArgsHelp,
	Example:           "  vimeolb html weekday --framework bootstrap5 --ratio 21x9",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionGenerators,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := newSelector()
		handleErr(err)

		g, err := resolveGenerator(args)
		handleErr(err)

		framework, err := resolveFramework()
		handleErr(err)

		html, err := s.HTML(g, viper.GetString(key.EmbedRatio), framework)
		handleErr(err)

		cmd.Println(html)
	},
}
