// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package reachability

import (
	"net"
	"strconv"
)

// AddressKind tells which route to the workload an address represents.
type AddressKind = string

const (
	// KindClusterIP is the virtual IP assigned to a regular service.
	KindClusterIP AddressKind = "clusterIP"
	// KindServiceDNS is the service A record under the cluster domain.
	KindServiceDNS AddressKind = "serviceDNS"
	// KindExternalIP is a load balancer ingress IP.
	KindExternalIP AddressKind = "externalIP"
	// KindExternalHostname is a load balancer ingress hostname.
	KindExternalHostname AddressKind = "externalHostname"
	// KindPodIP is the IP of a pod backing the service.
	KindPodIP AddressKind = "podIP"
	// KindPodDNS is the per-pod record published for headless services.
	KindPodDNS AddressKind = "podDNS"
)

// Address is a single host:port route to a service or to one of the pods
// behind it.
type Address struct {
	Kind     AddressKind `yaml:"kind" json:"kind"`
	Scheme   string      `yaml:"scheme" json:"scheme"`
	Host     string      `yaml:"host" json:"host"`
	Port     int32       `yaml:"port" json:"port"`
	PortName string      `yaml:"portName" json:"portName"`
	// Pod is the name of the backing pod; set for podIP and podDNS only.
	Pod string `yaml:"pod,omitempty" json:"pod,omitempty"`
}

// URL renders the address as "scheme://host:port".
// IPv6 hosts are bracketed.
func (a Address) URL() string {
	return a.Scheme + "://" + net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}
