package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vimeolb/vimeolb/color"
	"github.com/vimeolb/vimeolb/icon"
	"github.com/vimeolb/vimeolb/style"
	"github.com/vimeolb/vimeolb/util"
)

// videoEntry is a configured video along with the weekday it is served on, if any.
type videoEntry struct {
	Index   int               `json:"index"`
	ID      string            `json:"id"`
	Weekday mo.Option[string] `json:"weekday"`
	URL     string            `json:"url"`
}

func init() {
	rootCmd.AddCommand(videosCmd)
	videosCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	videosCmd.SetOut(os.Stdout)
}

// videosCmd lists the configured videos and the selection each one answers to.
var videosCmd = &cobra.Command{
	Use:     "videos",
	Short:   "List the configured videos with their index and weekday",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		s, err := newSelector()
		handleErr(err)

		entries := lo.Map(s.Videos, func(id string, i int) videoEntry {
			weekday := mo.None[string]()
			if i < 7 {
				weekday = mo.Some(time.Weekday(i).String())
			}

			return videoEntry{Index: i, ID: id, Weekday: weekday, URL: s.BuildURL(id)}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		today := time.Now().Weekday().String()
		for _, e := range entries {
			line := fmt.Sprintf("%s %s %s", icon.Get(icon.Video), style.Fg(color.Purple)(fmt.Sprintf("%2d", e.Index)), style.Bold(e.ID))
			if day, ok := e.Weekday.Get(); ok {
				line += " " + style.Faint(day)
				if day == today {
					line += " " + style.Today("today")
				}
			}

			cmd.Println(line)
			cmd.Println("   " + style.Faint(e.URL))
		}

		cmd.Println()
		cmd.Println(style.Italic(util.Quantify(len(entries), "video", "videos")))
		if len(entries) < 7 {
			cmd.Println(style.Fg(color.Yellow)("weekday selection needs 7 videos"))
		}
	},
}
