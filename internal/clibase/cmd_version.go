package clibase

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const flagNameDepPrefix = "dep-prefix"

func version(out io.Writer, name string, flags *pflag.FlagSet) error {
	depPrefix, err := flags.GetString(flagNameDepPrefix)
	if err != nil {
		return err
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintf(out, "%s (no build info available)\n", name)
		return nil
	}
	fmt.Fprintf(out, "%s (%s %s)\n", name, buildInfo.Main.Path, buildInfo.Main.Version)

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "  Compiled with: %s\n", runtime.Compiler)
	fmt.Fprintf(out, "         GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(out, "           GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(out, "     Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "\n")

	for _, pkg := range buildInfo.Deps {
		if !strings.HasPrefix(pkg.Path, depPrefix) {
			continue
		}
		output := fmt.Sprintf("%s %s", pkg.Path, pkg.Version)
		if pkg.Replace != nil {
			var struckthrough string
			for _, r := range output {
				struckthrough += "\u0336" + string(r)
			}
			output = fmt.Sprintf("%s\u0336  => %s", struckthrough, pkg.Replace.Path)
		}
		fmt.Fprintf(out, "  %s\n", output)
	}
	return nil
}

func addVersionCmd(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "output the binary version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return version(cmd.OutOrStdout(), rootCmd.Name(), cmd.Flags())
		},
	}
	versionFlags := versionCmd.Flags()
	versionFlags.String(flagNameDepPrefix, "github.com/disintegration", "only introspect packages under this prefix")

	rootCmd.AddCommand(versionCmd)
}
