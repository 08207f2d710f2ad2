package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive question prompt",
	Long: `Start an interactive prompt. Each line is one question; extraction
errors abort only that question. Exit with Ctrl-C or Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	registry := newRegistry(loadConfig(cmd))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// An interrupt while blocked on stdin still ends the session.
	go func() {
		<-ctx.Done()
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	fmt.Println("Welcome to the President Info Bot!")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		fmt.Print("Your query? ")
		if !scanner.Scan() {
			break
		}

		answers, err := registry.Answer(ctx, scanner.Text())
		if err != nil {
			// Fatal to the current query only
			fmt.Println(err)
			continue
		}
		for _, answer := range answers {
			fmt.Println(answer)
		}
	}

	fmt.Println("\nGoodbye!")
	return scanner.Err()
}
