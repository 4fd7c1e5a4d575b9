// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/kubereach/kubereach/pkg/inventory"
	"github.com/kubereach/kubereach/pkg/reachability"
)

func TestCollectTargets(t *testing.T) {
	reports := []inventory.ServiceReport{
		{
			Name: "web",
			Addresses: []reachability.Address{
				{Kind: reachability.KindClusterIP, Host: "10.96.0.10", Port: 80},
				{Kind: reachability.KindServiceDNS, Host: "web.default.svc.cluster.local", Port: 80},
				{Kind: reachability.KindExternalHostname, Host: "web.example.com", Port: 80},
			},
		},
		{
			Name: "web-admin",
			Addresses: []reachability.Address{
				{Kind: reachability.KindServiceDNS, Host: "web-admin.default.svc.cluster.local", Port: 8443},
				// Same hostname on another port must not be queried twice.
				{Kind: reachability.KindExternalHostname, Host: "web.example.com", Port: 8443},
			},
		},
		{
			Name: "db",
			Addresses: []reachability.Address{
				{Kind: reachability.KindPodIP, Host: "10.244.0.7", Port: 5432, Pod: "db-0"},
				{Kind: reachability.KindPodDNS, Host: "db-0.db.default.svc.cluster.local", Port: 5432, Pod: "db-0"},
			},
		},
	}

	want := []dnsTarget{
		{host: "web.default.svc.cluster.local", kind: reachability.KindServiceDNS},
		{host: "web.example.com", kind: reachability.KindExternalHostname},
		{host: "web-admin.default.svc.cluster.local", kind: reachability.KindServiceDNS},
		{host: "db-0.db.default.svc.cluster.local", kind: reachability.KindPodDNS},
	}
	assert.DeepEqual(t, collectTargets(reports), want, cmp.AllowUnexported(dnsTarget{}))
}

func TestCollectTargetsEmpty(t *testing.T) {
	reports := []inventory.ServiceReport{
		{
			Name: "pending",
			Addresses: []reachability.Address{
				{Kind: reachability.KindExternalIP, Host: "203.0.113.7", Port: 80},
			},
		},
	}
	assert.Assert(t, collectTargets(reports) == nil)
}
