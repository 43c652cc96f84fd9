package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"fib-service/feature/fibonacci"

	"github.com/spf13/cobra"
)

var fibJSONFlag bool

// fibCmd represents the fib command
var fibCmd = &cobra.Command{
	Use:   "fib <n>",
	Short: "Compute a Fibonacci number without starting the server",
	Long: `Computes the n-th Fibonacci number using the same saturating
arithmetic as the HTTP endpoint. Outputs the bare result, or the full
response object with --json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid index %q: must be a non-negative integer", args[0])
		}

		result := fibonacci.Result{N: n, Result: fibonacci.Compute(n)}

		if fibJSONFlag {
			out, err := json.Marshal(result)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(result.Result)
		return nil
	},
}

func init() {
	fibCmd.Flags().BoolVar(&fibJSONFlag, "json", false, "Output the full response object as JSON")
	RootCmd.AddCommand(fibCmd)
}
