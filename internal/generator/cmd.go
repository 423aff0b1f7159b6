package generator

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// AddCmds makes rootCmd run the full batch when invoked without a subcommand,
// and adds the generate and watch subcommands to it
func AddCmds(rootCmd *cobra.Command) {
	addGeneratePersistentFlags(rootCmd.PersistentFlags())
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runGenerate

	addCmdGenerate(rootCmd)
	addCmdWatch(rootCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	conf := Config{}
	if err := conf.setConfigFromFlags(cmd.Flags()); err != nil {
		return err
	}
	gen, err := New(conf)
	if err != nil {
		return err
	}

	return gen.report(gen.Run())
}

func addCmdGenerate(parentCmd *cobra.Command) {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate every iOS, Android and Web icon from the source image",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	parentCmd.AddCommand(generateCmd)
}

func addCmdWatch(parentCmd *cobra.Command) {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "regenerate the icons whenever the source image changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := Config{}
			if err := conf.setConfigFromFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := conf.setWatchConfigFromFlags(cmd.Flags()); err != nil {
				return err
			}
			gen, err := New(conf)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return gen.Watch(ctx)
		},
	}
	addWatchFlags(watchCmd.Flags())

	parentCmd.AddCommand(watchCmd)
}
