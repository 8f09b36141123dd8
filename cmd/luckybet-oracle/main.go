// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/33cn/chain33/common/log/log15"
	"github.com/game33/luckybet/oracle"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "luckybet-oracle",
		Short: "Randomness responder daemon of the luckybet dapp",
	}
	root.AddCommand(runCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch request logs and answer them",
		RunE:  run,
	}
	cmd.Flags().StringP("config", "c", "luckybet-oracle.toml", "config file")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := oracle.LoadConfig(path)
	if err != nil {
		return err
	}
	responder, err := oracle.New(cfg)
	if err != nil {
		return err
	}
	defer responder.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutting down")
		cancel()
	}()
	if err := responder.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
