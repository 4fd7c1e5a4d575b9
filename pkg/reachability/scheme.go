// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package reachability

import "strings"

// SchemeForProtocol maps a port protocol to the URL scheme used when the
// address is rendered. TCP ports are assumed to speak HTTP; unknown
// protocols are passed through lowercased.
func SchemeForProtocol(protocol string) string {
	switch p := strings.ToLower(protocol); p {
	case "tcp":
		return "http"
	case "udp":
		return "udp"
	default:
		return p
	}
}
