// Package cmd implements the command-line interface for vimeolb.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vimeolb/vimeolb/color"
	"github.com/vimeolb/vimeolb/constant"
	"github.com/vimeolb/vimeolb/icon"
	"github.com/vimeolb/vimeolb/key"
	"github.com/vimeolb/vimeolb/log"
	"github.com/vimeolb/vimeolb/selector"
	"github.com/vimeolb/vimeolb/style"
)

func completionGenerators(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return selector.GeneratorNames(), cobra.ShellCompDirectiveNoFileComp
}

func completionFrameworks(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return selector.FrameworkNames(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("videos", "V", []string{}, "Override the configured list of video ids")
	lo.Must0(viper.BindPFlag(key.Videos, rootCmd.PersistentFlags().Lookup("videos")))

	rootCmd.PersistentFlags().Bool("autoplay", true, "Start playback automatically")
	lo.Must0(viper.BindPFlag(key.PlayerAutoplay, rootCmd.PersistentFlags().Lookup("autoplay")))

	rootCmd.PersistentFlags().StringP("generator", "g", "", "Selection strategy: an index, static, random or weekday")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("generator", completionGenerators))
	lo.Must0(viper.BindPFlag(key.SelectGenerator, rootCmd.PersistentFlags().Lookup("generator")))

	rootCmd.PersistentFlags().StringP("framework", "F", "", "Embed markup convention: bootstrap4 or bootstrap5")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("framework", completionFrameworks))
	lo.Must0(viper.BindPFlag(key.EmbedFramework, rootCmd.PersistentFlags().Lookup("framework")))

	rootCmd.PersistentFlags().StringP("ratio", "r", "", "Embed aspect ratio token, e.g. 16by9 or 16x9")
	lo.Must0(viper.BindPFlag(key.EmbedRatio, rootCmd.PersistentFlags().Lookup("ratio")))
}

// rootCmd defines the entry point for the vimeolb application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Pick a Vimeo video from a list and render its player URL or embed snippet",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Pick a Vimeo video from a list and render its player URL or embed snippet"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
