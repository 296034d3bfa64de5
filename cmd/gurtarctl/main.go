package main

import (
	"os"
	"runtime/debug"

	"github.com/pterm/pterm"

	"github.com/gurtar/gurtarctl/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printf("\nCaught panic: %v\n", r)
			pterm.Error.Printf("%s\n", debug.Stack())
			os.Exit(2)
		}
	}()
	Execute()
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gurtarctl",
	Short: "Admin client for the Gurtar marketplace",
	Long: `gurtarctl is the terminal admin client for the Gurtar marketplace platform.
It manages users, businesses, categories, contact messages and admin logs,
shows platform statistics, and ships an interactive dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Place version check in PreRun to ensure flags are parsed first
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		versionFlag, _ := cmd.Flags().GetBool("version")
		if versionFlag {
			pterm.Info.Println(config.GetVersionInfo())
			os.Exit(0)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	config.InitFlags()
	rootCmd.PersistentFlags().AddFlagSet(pflag.CommandLine)
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Show version information")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newUsersCmd(),
		newBusinessesCmd(),
		newCategoriesCmd(),
		newContactsCmd(),
		newLogsCmd(),
		newStatsCmd(),
		newDashboardCmd(),
	)
}
