// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package reachability

import "fmt"

// ClusterDomain is the DNS suffix under which kube-dns publishes service
// records. Clusters configured with a custom domain are not supported.
const ClusterDomain = "svc.cluster.local"

// ServiceDNS returns the cluster-internal DNS name of a service.
func ServiceDNS(service, namespace string) string {
	return fmt.Sprintf("%s.%s.%s", service, namespace, ClusterDomain)
}

// PodDNS returns the per-pod DNS name that kube-dns publishes for pods
// backing a headless service.
func PodDNS(pod, service, namespace string) string {
	return fmt.Sprintf("%s.%s.%s.%s", pod, service, namespace, ClusterDomain)
}
