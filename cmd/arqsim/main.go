package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/slidingwindow/internal/cliconfig"
	"github.com/bft-labs/slidingwindow/pkg/log"
)

const longHelp = `Simulate the sequence-number and window bookkeeping of an n-bit
sliding-window ARQ protocol.

The sender numbers packets modulo 2^n, keeps at most 2^(n-1) frames in flight
and retires the oldest frame as acknowledged whenever the window fills or the
stream ends. The receiver accepts frames strictly in order and acknowledges
the last accepted sequence number after every frame.

Values not given by flag, $ARQSIM_* or the config file are prompted for.`

var exampleUsage = strings.TrimSpace(`
  arqsim
  arqsim --packets 5 --bits 2
  arqsim --variant two-bit --packets 10 --mode linked --log-format json
  arqsim --config ./arqsim.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd() *cobra.Command {
	flags := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "arqsim",
		Short:         "Sliding-window ARQ protocol simulator",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			s := &session{
				flags:    flags,
				changed:  changed,
				cfgFile:  cfgFile,
				prompter: cliconfig.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				answers:  map[string]int{},
				out:      cmd.OutOrStdout(),
				errOut:   cmd.ErrOrStderr(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if flags.Watch {
				return s.watch(ctx)
			}
			return s.runOnce(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.arqsim/config.toml)")
	root.Flags().IntVar(&flags.Packets, cliconfig.KeyPackets, flags.Packets, "number of packets to send (prompted when omitted)")
	root.Flags().IntVar(&flags.Bits, cliconfig.KeyBits, flags.Bits, "sequence number width n for the generic variant (prompted when omitted)")
	root.Flags().StringVar(&flags.Variant, cliconfig.KeyVariant, flags.Variant, "sequence space variant: generic or two-bit")
	root.Flags().StringVar(&flags.Mode, cliconfig.KeyMode, flags.Mode, "simulated (sender then receiver) or linked (concurrent, bounded queue)")
	root.Flags().StringVar(&flags.LogLevel, cliconfig.KeyLogLevel, flags.LogLevel, "log level: debug, info, warn, error")
	root.Flags().StringVar(&flags.LogFormat, cliconfig.KeyLogFormat, flags.LogFormat, "log format: console or json")
	root.Flags().BoolVar(&flags.Quiet, cliconfig.KeyQuiet, flags.Quiet, "suppress the layer-by-layer narration")
	root.Flags().BoolVar(&flags.Watch, cliconfig.KeyWatch, flags.Watch, "re-run whenever the config file changes")

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := log.NewZerologAdapterWithLogger(cliconfig.Logger())
		logger.Error("arqsim", log.Err(err))
		os.Exit(1)
	}
}
