// Command learnhubctl inspects, validates and publishes learning hub content.
//
// Usage:
//
//	learnhubctl topics list --query loop
//	learnhubctl topics show variables-datatypes --section examples
//	learnhubctl content validate --dir ./content
//	learnhubctl content seed --mongo-uri mongodb://localhost:27017 --db learnhub
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	contentDir string
	verbose    bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "learnhubctl",
		Short:         "Inspect and manage learning hub content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&contentDir, "dir", "", "content directory (default: the embedded content)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(newTopicsCmd(), newContentCmd())
	return root
}

// newLogger is quiet unless --verbose is set.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}
