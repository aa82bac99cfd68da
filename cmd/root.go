package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpfilter/internal/bmp"
	"github.com/anas-shakeel/bmpfilter/internal/bmpio"
	"github.com/anas-shakeel/bmpfilter/internal/filters"
)

type options struct {
	grayscale bool
	logLevel  string
}

const logLevelFlag = "--log-level"

// splitArguments separates the --log-level setting, which never counts as
// an argument, from the tokens that do.
func splitArguments(args []string) (settings, counted []string) {
	for i := 0; i < len(args); i++ {
		switch {
		case strings.HasPrefix(args[i], logLevelFlag+"="):
			settings = append(settings, args[i])
		case args[i] == logLevelFlag && i+1 < len(args):
			settings = append(settings, args[i], args[i+1])
			i++
		default:
			counted = append(counted, args[i])
		}
	}
	return settings, counted
}

// isFlag reports whether arg is one of the flags a lone argument may be.
// Any other lone argument selects threshold mode.
func isFlag(arg string) bool {
	switch arg {
	case "-g", "--grayscale", "-h", "--help":
		return true
	}
	return false
}

// NewRootCommand returns the bmpfilter command. It reads the bitmap from
// the command's input and writes the result to the command's output.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	command := &cobra.Command{
		Use:   "bmpfilter [-g]",
		Short: "Filter a 24-bit bitmap from stdin to stdout",
		Long: `bmpfilter reads a 24-bit uncompressed bitmap from stdin, filters every pixel and writes the result to stdout.

Without -g every pixel becomes white when its average intensity is 128 or more and black otherwise. With -g every pixel is replaced by its average intensity.

At most one argument is accepted (--log-level and its value do not count); any argument other than -g selects black and white.

The input size is taken from stdin when it is a file. When stdin is a pipe it is read until EOF instead of failing with exit code 2.`,
		// Every token counts towards the argument limit, so flags are
		// parsed in PreRunE once the count is known.
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if _, counted := splitArguments(args); len(counted) > 1 {
				cmd.PrintErrf("Usage: %s\n", cmd.UseLine())
				return newExitCodeError(fmt.Errorf("%w: expected at most 1, got %d", errArgumentCount, len(counted)), ExitCodeArguments)
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			settings, counted := splitArguments(args)
			if len(counted) == 1 && isFlag(counted[0]) {
				settings = append(settings, counted[0])
			}

			if err := cmd.Flags().Parse(settings); err != nil {
				return newExitCodeError(err, ExitCodeArguments)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}

			mode := filters.Threshold
			if opts.grayscale {
				mode = filters.Grayscale
			}

			level := hclog.LevelFromString(opts.logLevel)
			if level == hclog.NoLevel {
				return newExitCodeError(fmt.Errorf("invalid log level %q", opts.logLevel), ExitCodeArguments)
			}

			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "bmpfilter",
				Level:  level,
				Output: cmd.ErrOrStderr(),
			})

			return classify(run(logger, cmd.InOrStdin(), cmd.OutOrStdout(), mode), ExitCodeRead)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.Flags().BoolVarP(&opts.grayscale, "grayscale", "g", false, "Replace every pixel by its average intensity instead of black or white.")
	command.Flags().StringVar(&opts.logLevel, "log-level", "off", "Level of the diagnostics written to stderr: trace, debug, info, warn, error or off.")

	return command
}

// run filters the bitmap read from in and writes it to out.
func run(logger hclog.Logger, in io.Reader, out io.Writer, mode filters.Mode) error {
	buf, err := bmpio.ReadAll(in, bmpio.MaxBufferSize)
	if err != nil {
		return err
	}
	logger.Debug("read input", "fileSizeInBytes", len(buf))

	header, err := bmp.Locate(buf)
	if err != nil {
		return err
	}
	logger.Debug("located pixel array",
		"offsetFirstBytePixelArray", header.PixelArrayOffset,
		"width", header.Width,
		"height", header.Height,
	)

	pixels, err := bmp.NewPixelArray(buf, header)
	if err != nil {
		return err
	}
	logger.Debug("row layout",
		"padding", pixels.Padding,
		"stride", pixels.Stride,
		"rows", pixels.Rows(),
	)

	count := filters.ApplyToPixelArray(pixels, mode)
	logger.Debug("filtered pixel array", "mode", mode.String(), "pixels", count)

	return bmpio.WriteAll(out, buf)
}

// Execute runs the root command on the process's stdin, stdout and stderr.
func Execute() error {
	command := NewRootCommand()
	command.SetIn(os.Stdin)
	command.SetOut(os.Stdout)
	command.SetErr(os.Stderr)

	err := command.Execute()
	if err != nil {
		command.PrintErrln(err)
	}

	return err
}
