package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and exit",
	Long: `Ask answers one question and exits. The question may be quoted or
given as separate arguments; a trailing question mark is fine.

Example:
  presbot ask "who is the president of france"
  presbot ask when was the president of ireland born`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	registry := newRegistry(loadConfig(cmd))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	answers, err := registry.Answer(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	for _, answer := range answers {
		fmt.Println(answer)
	}
	return nil
}
