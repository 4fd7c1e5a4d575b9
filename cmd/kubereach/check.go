// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kubereach/kubereach/pkg/dnsprobe"
	"github.com/kubereach/kubereach/pkg/inventory"
	"github.com/kubereach/kubereach/pkg/kubeclient"
	"github.com/kubereach/kubereach/pkg/reachability"
	"github.com/kubereach/kubereach/pkg/textutil"
)

func newCheckCommand() *cobra.Command {
	checkCommand := &cobra.Command{
		Use:               "check",
		Short:             "Check that the derived DNS names resolve",
		Args:              WrapArgsError(cobra.NoArgs),
		RunE:              checkAction,
		GroupID:           basicCommand,
		ValidArgsFunction: cobra.NoFileCompletions,
	}

	registerScanFlags(checkCommand.Flags())
	checkCommand.Flags().String("nameserver", "", "Nameserver to query instead of the system resolver, e.g. \"10.96.0.10:53\"")

	return checkCommand
}

// dnsTarget is a DNS name worth querying, with the address kind it came from.
type dnsTarget struct {
	host string
	kind reachability.AddressKind
}

// collectTargets extracts the DNS-backed addresses from the reports,
// deduplicated in first-seen order.
func collectTargets(reports []inventory.ServiceReport) []dnsTarget {
	var targets []dnsTarget
	seen := make(map[string]bool)
	for _, report := range reports {
		for _, addr := range report.Addresses {
			switch addr.Kind {
			case reachability.KindServiceDNS, reachability.KindPodDNS, reachability.KindExternalHostname:
			default:
				continue
			}
			if seen[addr.Host] {
				continue
			}
			seen[addr.Host] = true
			targets = append(targets, dnsTarget{host: addr.Host, kind: addr.Kind})
		}
	}
	return targets
}

func checkAction(cmd *cobra.Command, _ []string) error {
	params, err := parseScanFlags(cmd.Flags())
	if err != nil {
		return err
	}
	nameserver, err := cmd.Flags().GetString("nameserver")
	if err != nil {
		return err
	}

	prober, err := dnsprobe.NewProber(nameserver)
	if err != nil {
		return err
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

	targets := collectTargets(reports)
	if len(targets) == 0 {
		logrus.Warnf("No DNS-backed address found in namespace %q.", params.namespace)
		return nil
	}
	logrus.Debugf("querying %d names via %v", len(targets), prober.Servers())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 8, 4, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tSTATUS\tRECORDS")
	failed := 0
	for _, target := range targets {
		result := prober.Lookup(ctx, target.host)
		if result.Status == dnsprobe.StatusError {
			failed++
			logrus.WithError(result.Err).Warnf("failed to query %q", target.host)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			target.host,
			target.kind,
			result.Status,
			textutil.MissingString("-", strings.Join(result.Records, ",")),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed == len(targets) {
		return errors.New("all DNS queries failed")
	}
	return nil
}
