// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	flag "github.com/spf13/pflag"

	"github.com/kubereach/kubereach/pkg/inventory"
)

// registerScanFlags registers the flags shared by the commands that scan a namespace.
func registerScanFlags(flags *flag.FlagSet) {
	flags.StringP("namespace", "n", DefaultNamespace, "Namespace to inventory")
	flags.String("kubeconfig", "", "Path to the kubeconfig file")
	flags.StringP("filter", "f", "", "Only include services whose name matches the regular expression")
	flags.Duration("timeout", 30*time.Second, "Time limit for talking to the cluster")
}

// scanParams holds the parsed values of the shared scan flags.
type scanParams struct {
	namespace  string
	kubeconfig string
	opts       inventory.ScanOptions
	timeout    time.Duration
}

func parseScanFlags(flags *flag.FlagSet) (scanParams, error) {
	var params scanParams
	var err error
	if params.namespace, err = flags.GetString("namespace"); err != nil {
		return params, err
	}
	if params.kubeconfig, err = flags.GetString("kubeconfig"); err != nil {
		return params, err
	}
	filter, err := flags.GetString("filter")
	if err != nil {
		return params, err
	}
	nameFilter, err := inventory.CompileNameFilter(filter)
	if err != nil {
		return params, err
	}
	params.opts = inventory.ScanOptions{NameFilter: nameFilter}
	params.timeout, err = flags.GetDuration("timeout")
	if err != nil {
		return params, err
	}
	return params, nil
}
