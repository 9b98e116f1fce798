package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/eres666/internal/check"
	"github.com/danielpatrickdp/eres666/internal/report"
	"github.com/danielpatrickdp/eres666/internal/rpc"
)

// #region call-cmd
var (
	callAddr    string
	callTimeout time.Duration
	callJSON    bool
)

var callCmd = &cobra.Command{
	Use:   "call",
	Short: "Run the configured scenario on a remote verifier",
	RunE:  runCall,
}

func init() {
	callCmd.Flags().StringVar(&callAddr, "addr", "", "verifier address (default: server.addr from config)")
	callCmd.Flags().DurationVar(&callTimeout, "timeout", 10*time.Second, "request timeout")
	callCmd.Flags().BoolVar(&callJSON, "json", false, "output the result as JSON")
}

func runCall(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	addr := cfg.Server.Addr
	if callAddr != "" {
		addr = callAddr
	}

	client, err := rpc.NewClient(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()

	s := cfg.Scenario.ToScenario()
	start := time.Now()
	res, err := client.Run(ctx, s)
	if err != nil {
		return fmt.Errorf("remote run: %w", err)
	}
	logger.Debug("remote run complete", zap.String("addr", addr), zap.Duration("elapsed", time.Since(start)))

	chk := check.NewHarness(check.DefaultConfig()).Run(res)
	if callJSON {
		return report.WriteJSON(cmd.OutOrStdout(), res, &chk)
	}
	return report.Write(cmd.OutOrStdout(), s, res, report.Options{Check: &chk})
}

// #endregion call-cmd
