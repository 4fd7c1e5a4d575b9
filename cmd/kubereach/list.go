// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kubereach/kubereach/pkg/inventory"
	"github.com/kubereach/kubereach/pkg/kubeclient"
)

func newListCommand() *cobra.Command {
	listCommand := &cobra.Command{
		Use:               "list",
		Aliases:           []string{"ls"},
		Short:             "List the reachable URLs of every service in a namespace",
		Args:              WrapArgsError(cobra.NoArgs),
		RunE:              listAction,
		GroupID:           basicCommand,
		ValidArgsFunction: cobra.NoFileCompletions,
	}

	registerScanFlags(listCommand.Flags())
	listCommand.Flags().String("format", "table", "Output format, one of: table, json, yaml, go-template\n"+inventory.FormatHelp)
	listCommand.Flags().BoolP("quiet", "q", false, "Only show service names")

	return listCommand
}

func listAction(cmd *cobra.Command, _ []string) error {
	params, err := parseScanFlags(cmd.Flags())
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	if quiet && cmd.Flags().Changed("format") {
		return errors.New("option --quiet conflicts with --format")
	}

	client, err := kubeclient.New(params.kubeconfig)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), params.timeout)
	defer cancel()

	scanner := inventory.NewScanner(client)
	reports, err := scanner.Scan(ctx, params.namespace, params.opts)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		logrus.Warnf("No service found in namespace %q.", params.namespace)
	}

	if quiet {
		for _, report := range reports {
			fmt.Fprintln(cmd.OutOrStdout(), report.Name)
		}
		return nil
	}

	return inventory.PrintReports(cmd.OutOrStdout(), reports, format)
}
