// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

// Package reachinfo aggregates diagnostic information about the tool and
// its environment.
package reachinfo

import (
	"github.com/kubereach/kubereach/pkg/kubeclient"
	"github.com/kubereach/kubereach/pkg/reachability"
	"github.com/kubereach/kubereach/pkg/version"
)

type Info struct {
	Version         string            `json:"version"`
	ClusterDomain   string            `json:"clusterDomain"`
	SchemeMap       map[string]string `json:"schemeMap"`
	KubeconfigPaths []string          `json:"kubeconfigPaths"`
}

// New returns an Info with the kubereach version, the DNS suffix used for
// derived names, the protocol-to-scheme mapping, and the kubeconfig
// candidates in resolution order.
func New() *Info {
	return &Info{
		Version:       version.Version,
		ClusterDomain: reachability.ClusterDomain,
		SchemeMap: map[string]string{
			"TCP":  reachability.SchemeForProtocol("TCP"),
			"UDP":  reachability.SchemeForProtocol("UDP"),
			"SCTP": reachability.SchemeForProtocol("SCTP"),
		},
		KubeconfigPaths: kubeclient.DefaultPaths(),
	}
}
