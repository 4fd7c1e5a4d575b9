// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

// Package reachability derives the set of URLs that reach a Kubernetes
// service and the pods behind it.
package reachability

import (
	corev1 "k8s.io/api/core/v1"
)

type TopologyKind = string

const (
	// TopologyUnassigned means no cluster IP has been allocated yet.
	TopologyUnassigned TopologyKind = "Unassigned"
	// TopologyHeadless means spec.clusterIP is explicitly "None".
	TopologyHeadless TopologyKind = "Headless"
	// TopologyClusterIP means a virtual IP is assigned.
	TopologyClusterIP TopologyKind = "ClusterIP"
)

// Topology is the addressing topology of a single service, derived from
// spec.clusterIP.
type Topology struct {
	Kind TopologyKind
	// ClusterIP is the assigned virtual IP; set for TopologyClusterIP only.
	ClusterIP string
}

// ClassifyService returns the addressing topology of svc.
func ClassifyService(svc *corev1.Service) Topology {
	switch ip := svc.Spec.ClusterIP; ip {
	case "":
		return Topology{Kind: TopologyUnassigned}
	case corev1.ClusterIPNone:
		return Topology{Kind: TopologyHeadless}
	default:
		return Topology{Kind: TopologyClusterIP, ClusterIP: ip}
	}
}

// portSpec is a service or endpoint port with the ingestion defaults
// applied: protocol TCP and display name "default".
type portSpec struct {
	port   int32
	name   string
	scheme string
}

func normalizePort(name string, port int32, protocol corev1.Protocol) portSpec {
	if protocol == "" {
		protocol = corev1.ProtocolTCP
	}
	if name == "" {
		name = "default"
	}
	return portSpec{port: port, name: name, scheme: SchemeForProtocol(string(protocol))}
}

func normalizeServicePorts(ports []corev1.ServicePort) []portSpec {
	specs := make([]portSpec, 0, len(ports))
	for _, p := range ports {
		specs = append(specs, normalizePort(p.Name, p.Port, p.Protocol))
	}
	return specs
}

func normalizeEndpointPorts(ports []corev1.EndpointPort) []portSpec {
	specs := make([]portSpec, 0, len(ports))
	for _, p := range ports {
		specs = append(specs, normalizePort(p.Name, p.Port, p.Protocol))
	}
	return specs
}

// Resolve returns every address reaching svc, in declaration order:
// cluster addresses per service port, external addresses per load balancer
// ingress entry, then pod addresses per endpoints subset.
//
// Headless services get no cluster addresses; their pods are reached by IP
// and by per-pod DNS instead. Unassigned services get no cluster addresses
// either. endpoints may be nil when the lookup failed or the object does
// not exist yet; the pod section is empty then.
func Resolve(svc *corev1.Service, endpoints *corev1.Endpoints, namespace string) []Address {
	var addrs []Address

	topology := ClassifyService(svc)
	serviceDNS := ServiceDNS(svc.Name, namespace)
	ports := normalizeServicePorts(svc.Spec.Ports)

	if topology.Kind == TopologyClusterIP {
		for _, p := range ports {
			addrs = append(addrs,
				Address{Kind: KindClusterIP, Scheme: p.scheme, Host: topology.ClusterIP, Port: p.port, PortName: p.name},
				Address{Kind: KindServiceDNS, Scheme: p.scheme, Host: serviceDNS, Port: p.port, PortName: p.name},
			)
		}
	}

	for _, ingress := range svc.Status.LoadBalancer.Ingress {
		if ingress.IP != "" {
			for _, p := range ports {
				addrs = append(addrs, Address{Kind: KindExternalIP, Scheme: p.scheme, Host: ingress.IP, Port: p.port, PortName: p.name})
			}
		}
		if ingress.Hostname != "" {
			for _, p := range ports {
				addrs = append(addrs, Address{Kind: KindExternalHostname, Scheme: p.scheme, Host: ingress.Hostname, Port: p.port, PortName: p.name})
			}
		}
	}

	if endpoints == nil {
		return addrs
	}
	for _, subset := range endpoints.Subsets {
		subsetPorts := normalizeEndpointPorts(subset.Ports)
		for _, endpointAddr := range subset.Addresses {
			pod := "unknown"
			if ref := endpointAddr.TargetRef; ref != nil && ref.Name != "" {
				pod = ref.Name
			}
			for _, p := range subsetPorts {
				addrs = append(addrs, Address{Kind: KindPodIP, Scheme: p.scheme, Host: endpointAddr.IP, Port: p.port, PortName: p.name, Pod: pod})
				if topology.Kind == TopologyHeadless {
					addrs = append(addrs, Address{Kind: KindPodDNS, Scheme: p.scheme, Host: PodDNS(pod, svc.Name, namespace), Port: p.port, PortName: p.name, Pod: pod})
				}
			}
		}
	}

	return addrs
}
