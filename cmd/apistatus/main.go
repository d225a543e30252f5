package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roivaz/courtlistener-mcp/internal/config"
	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/logging"
	"github.com/roivaz/courtlistener-mcp/internal/mcp"
	"github.com/roivaz/courtlistener-mcp/internal/mcp/tools"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

func main() {
	root := &cobra.Command{
		Use:           "apistatus",
		Short:         "Check CourtListener API connectivity and token",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.PersistentFlags().String("courtlistener-base-url", "", "CourtListener API root")

	config.Init(root)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ok := color.New(color.FgGreen, color.Bold)
	bad := color.New(color.FgRed, color.Bold)

	fmt.Println("CourtListener API Status:")
	fmt.Println("=========================")

	if config.APIToken() == "" {
		bad.Println("❌ No API token found.")
		fmt.Println(remediation)
		return fmt.Errorf("missing token")
	}

	log := logging.New(logging.NewZapLogger(config.LogLevel()))
	client, err := mcp.NewClient(log)
	if err != nil {
		bad.Printf("❌ %v\n", err)
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	status, err := research.NewService(client, log).APIStatus(ctx)
	if err != nil {
		bad.Printf("❌ API error: %v\n", err)
		if courtlistener.IsKind(err, courtlistener.KindAuthentication) {
			fmt.Println(remediation)
		} else {
			fmt.Println("Check your token and network connection.")
		}
		return err
	}

	ok.Println("✅ Connected")
	fmt.Println()
	fmt.Print(tools.FormatStatus(status))
	return nil
}

const remediation = `To get a token:
1. Visit https://www.courtlistener.com/help/api/rest/
2. Sign up for a free account
3. Generate an API token
4. Set: export COURTLISTENER_API_TOKEN='your_token_here'`
