// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestParseScanFlagsDefaults(t *testing.T) {
	cmd := newListCommand()
	params, err := parseScanFlags(cmd.Flags())
	assert.NilError(t, err)
	assert.Equal(t, params.namespace, "default")
	assert.Equal(t, params.kubeconfig, "")
	assert.Equal(t, params.timeout, 30*time.Second)
	assert.Assert(t, params.opts.NameFilter == nil)
}

func TestParseScanFlags(t *testing.T) {
	cmd := newCheckCommand()
	assert.NilError(t, cmd.Flags().Set("namespace", "kube-system"))
	assert.NilError(t, cmd.Flags().Set("filter", "^co"))
	assert.NilError(t, cmd.Flags().Set("timeout", "5s"))
	params, err := parseScanFlags(cmd.Flags())
	assert.NilError(t, err)
	assert.Equal(t, params.namespace, "kube-system")
	assert.Equal(t, params.timeout, 5*time.Second)
	assert.Assert(t, params.opts.NameFilter != nil)
	assert.Assert(t, params.opts.NameFilter.MatchString("coredns"))
	assert.Assert(t, !params.opts.NameFilter.MatchString("web"))
}

func TestParseScanFlagsInvalidFilter(t *testing.T) {
	cmd := newListCommand()
	assert.NilError(t, cmd.Flags().Set("filter", "["))
	_, err := parseScanFlags(cmd.Flags())
	assert.ErrorContains(t, err, "invalid service name filter")
}
