package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ttacon/chalk"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/record"
	"github.com/lixenwraith/rollball/vmath"
)

var (
	heading = chalk.Bold.NewStyle().WithForeground(chalk.Cyan)
	good    = chalk.Green
	warn    = chalk.Yellow
)

func printSession(w io.Writer, s sessionSummary) {
	fmt.Fprintln(w, heading.Style("rollball session "+s.Session))

	result := fmt.Sprintf("score %d/%d", s.Score, s.Target)
	if s.Won {
		fmt.Fprintln(w, "  "+good.Color(result+"  won"))
	} else {
		fmt.Fprintln(w, "  "+result)
	}
	fmt.Fprintf(w, "  %s ticks in %s, %s mode switches, %s pickups\n",
		humanize.Comma(s.Ticks), s.Elapsed.Round(time.Second), humanize.Comma(s.Switches), humanize.Comma(s.Pickups))

	if s.Recording != "" {
		size := ""
		if info, err := os.Stat(s.Recording); err == nil {
			size = ", " + humanize.Bytes(uint64(info.Size()))
		}
		fmt.Fprintf(w, "  recorded %s frames to %s%s\n", humanize.Comma(s.Recorded), s.Recording, size)
	}
	if s.Dropped > 0 {
		fmt.Fprintln(w, "  "+warn.Color(fmt.Sprintf("observers dropped %s frames", humanize.Comma(s.Dropped))))
	}
}

func printReplay(w io.Writer, path string, s record.Summary) {
	fmt.Fprintln(w, heading.Style("rollball recording "+path))
	fmt.Fprintf(w, "  session %s, started %s, %s\n",
		s.Header.Session, s.Header.Started.Format(time.RFC3339), humanize.Bytes(uint64(s.Bytes)))
	fmt.Fprintf(w, "  %s frames, last tick %s\n", humanize.Comma(int64(s.Frames)), humanize.Comma(int64(s.LastTick)))

	for m := core.DebugMode(0); m < core.DebugModeCount; m++ {
		fmt.Fprintf(w, "  %-9s %5.1f%%\n", m.String(), 100*s.ModeShare(m))
	}

	if s.HasTarget() {
		fmt.Fprintf(w, "  nearest min %s over %s targeted frames\n",
			vmath.FormatScalar2(s.MinDistance), humanize.Comma(int64(s.Targeted)))
	} else {
		fmt.Fprintln(w, "  "+warn.Color("nearest no target"))
	}
	fmt.Fprintf(w, "  max speed %s\n", vmath.FormatScalar2(s.MaxSpeed))
}
