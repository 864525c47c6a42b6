package cli

import (
	"fmt"
	"io"
)

func Help(program string, stdout io.Writer) {
	Version(stdout)
	fmt.Fprintf(stdout, "Usage: \"%s <command> [-Options...]\"\n", program)
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Global options:")
	fmt.Fprintln(stdout, "--config=FILE")
	fmt.Fprintln(stdout, "                    Read jumppad, allgprm, log_level and default_frame_rate from a YAML file")
	fmt.Fprintln(stdout, "--jumppad")
	fmt.Fprintln(stdout, "                    Enable the creation of jumppads")
	fmt.Fprintln(stdout, "--allgprm")
	fmt.Fprintln(stdout, "                    Free all 16 general purpose registers")
	fmt.Fprintln(stdout, "--log-level=debug|info|warn|error")
	fmt.Fprintln(stdout, "                    Minimum level of diagnostics written to stderr")
	fmt.Fprintln(stdout, "--frame-rate=ntsc|pal")
	fmt.Fprintln(stdout, "                    Frame rate assumed when none was detected")
	fmt.Fprintln(stdout, "")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "attrs                Negotiate declared video/audio/subpicture attributes")
	fmt.Fprintln(stdout, "timecode             Encode elapsed seconds as DVD BCD timecodes, or decode 0x... values")
	fmt.Fprintln(stdout, "subpic-mask          List the subpicture modes legal for an aspect ratio")
	fmt.Fprintln(stdout, "completion           Generate the autocompletion script for the specified shell")
	fmt.Fprintln(stdout, "help                 Help about any command")
	fmt.Fprintln(stdout, "version              Print go-dvdauthor version information")
	fmt.Fprintln(stdout, "update               Update dvdauthor to latest version (release builds only)")
}

func HelpNothing(program string, stdout io.Writer) {
	fmt.Fprintf(stdout, "Usage: \"%s <command> [-Options...]\"\n", program)
	fmt.Fprintf(stdout, "\"%s --help\" for displaying more information\n", program)
}

func Usage(program string, stdout io.Writer) int {
	HelpNothing(program, stdout)
	return exitError
}
