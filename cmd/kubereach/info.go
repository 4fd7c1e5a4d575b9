// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubereach/kubereach/pkg/reachinfo"
	"github.com/kubereach/kubereach/pkg/yqutil"
)

func newInfoCommand() *cobra.Command {
	infoCommand := &cobra.Command{
		Use:               "info",
		Short:             "Show diagnostic information",
		Args:              WrapArgsError(cobra.NoArgs),
		RunE:              infoAction,
		GroupID:           advancedCommand,
		ValidArgsFunction: cobra.NoFileCompletions,
	}
	infoCommand.Flags().String("yq", ".", "Apply yq expression to output, e.g. \".clusterDomain\"")
	return infoCommand
}

func infoAction(cmd *cobra.Command, _ []string) error {
	info := reachinfo.New()
	j, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return err
	}
	yq, err := cmd.Flags().GetString("yq")
	if err != nil {
		return err
	}
	if yq == "." {
		// Print the JSON as is.
		fmt.Fprintln(cmd.OutOrStdout(), string(j))
		return nil
	}
	out, err := yqutil.EvaluateExpression(yq, j)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
