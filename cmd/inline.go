package cmd

import (
	"encoding/json"
	"io"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vimeolb/vimeolb/filesystem"
	"github.com/vimeolb/vimeolb/inline"
	"github.com/vimeolb/vimeolb/key"
	"github.com/vimeolb/vimeolb/selector"
	"github.com/vimeolb/vimeolb/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("embed", "e", false, "Include the embed snippet for the configured framework")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// inlineCmd executes a single selection in non-interactive, scriptable mode.
var inlineCmd = &cobra.Command{
	Use:   "inline [generator]",
	Short: "Select a video once and print its id, URL and embed for scripts",
	Long: `Select a video once and print its id, URL and optionally its embed snippet.

Plain output prints one value per line: id, url, then html when --embed is set.
With --json a single object is printed, see "vimeolb inline schema".

` + generatorArgsHelp,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionGenerators,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := newSelector()
		handleErr(err)

		g, err := resolveGenerator(args)
		handleErr(err)

		framework := mo.None[selector.Framework]()
		if lo.Must(cmd.Flags().GetBool("embed")) {
			f, err := resolveFramework()
			handleErr(err)
			framework = mo.Some(f)
		}

		ratio := mo.EmptyableToOption(viper.GetString(key.EmbedRatio))

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.CreateAll(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		handleErr(inline.Run(&inline.Options{
			Out:       writer,
			Selector:  s,
			Generator: g,
			Framework: framework,
			Ratio:     ratio,
			Json:      lo.Must(cmd.Flags().GetBool("json")),
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline mode output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "inline." + t.Name()
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
