// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

// Package dnsprobe verifies that derived DNS names are actually published
// by a resolver.
package dnsprobe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime"
	"strings"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

var defaultFallbackIPs = []string{"8.8.8.8", "1.1.1.1"}

type Status = string

const (
	// StatusOK means at least one A or AAAA record came back.
	StatusOK Status = "ok"
	// StatusNXDomain means the resolver does not know the name.
	StatusNXDomain Status = "nxdomain"
	// StatusNoRecords means the name exists but has no address records.
	StatusNoRecords Status = "norecords"
	// StatusError means no query could be completed.
	StatusError Status = "error"
)

// Result is the outcome of resolving a single name.
type Result struct {
	Name    string   `json:"name"`
	Status  Status   `json:"status"`
	Records []string `json:"records,omitempty"`
	Err     error    `json:"-"`
}

// Prober issues A/AAAA queries against a fixed set of nameservers.
type Prober struct {
	clientConfig *dns.ClientConfig
	clients      []*dns.Client
}

func newStaticClientConfig(ips []string) (*dns.ClientConfig, error) {
	s := ``
	for _, ip := range ips {
		s += fmt.Sprintf("nameserver %s\n", ip)
	}
	r := strings.NewReader(s)
	return dns.ClientConfigFromReader(r)
}

// NewProber builds a prober against nameserver ("host" or "host:port").
// With an empty nameserver the system resolver configuration is used,
// falling back to defaultFallbackIPs when it cannot be read.
func NewProber(nameserver string) (*Prober, error) {
	var cc *dns.ClientConfig
	var err error
	switch {
	case nameserver != "":
		host, port, splitErr := net.SplitHostPort(nameserver)
		if splitErr != nil {
			host, port = nameserver, "53"
		}
		cc, err = newStaticClientConfig([]string{host})
		if err != nil {
			return nil, fmt.Errorf("invalid nameserver %q: %w", nameserver, err)
		}
		cc.Port = port
	case runtime.GOOS != "windows":
		cc, err = dns.ClientConfigFromFile("/etc/resolv.conf")
		if err != nil {
			logrus.WithError(err).Warnf("failed to detect system DNS, falling back to %v", defaultFallbackIPs)
			cc, err = newStaticClientConfig(defaultFallbackIPs)
			if err != nil {
				return nil, err
			}
		}
	default:
		// For windows, the only fallback addresses are defaultFallbackIPs
		// since there is no /etc/resolv.conf
		cc, err = newStaticClientConfig(defaultFallbackIPs)
		if err != nil {
			return nil, err
		}
	}
	clients := []*dns.Client{
		{}, // UDP
		{Net: "tcp"},
	}
	return &Prober{clientConfig: cc, clients: clients}, nil
}

// Servers returns the nameserver addresses the prober queries.
func (p *Prober) Servers() []string {
	addrs := make([]string, 0, len(p.clientConfig.Servers))
	for _, srv := range p.clientConfig.Servers {
		addrs = append(addrs, net.JoinHostPort(srv, p.clientConfig.Port))
	}
	return addrs
}

// Lookup queries name for A then AAAA records. NXDOMAIN and empty answers
// are findings, not errors; Err is set only when no query completed at all.
func (p *Prober) Lookup(ctx context.Context, name string) Result {
	result := Result{Name: name}
	fqdn := dns.Fqdn(name)
	var (
		answered bool
		nxdomain bool
		lastErr  error
	)
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		req := new(dns.Msg)
		req.SetQuestion(fqdn, qtype)
		reply, err := p.exchange(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		answered = true
		if reply.Rcode == dns.RcodeNameError {
			nxdomain = true
			continue
		}
		for _, rr := range reply.Answer {
			switch a := rr.(type) {
			case *dns.A:
				result.Records = append(result.Records, a.A.String())
			case *dns.AAAA:
				result.Records = append(result.Records, a.AAAA.String())
			}
		}
	}
	switch {
	case len(result.Records) > 0:
		result.Status = StatusOK
	case nxdomain:
		result.Status = StatusNXDomain
	case answered:
		result.Status = StatusNoRecords
	default:
		result.Status = StatusError
		result.Err = lastErr
	}
	return result
}

// exchange tries every client against every configured server until one
// responds. A truncated UDP reply moves on to the TCP client.
func (p *Prober) exchange(ctx context.Context, req *dns.Msg) (*dns.Msg, error) {
	var lastErr error
	for _, client := range p.clients {
		for _, srv := range p.clientConfig.Servers {
			addr := net.JoinHostPort(srv, p.clientConfig.Port)
			reply, _, err := client.ExchangeContext(ctx, req, addr)
			if err != nil {
				logrus.Debugf("failed to query upstream [%v]: %v", addr, err)
				lastErr = err
				continue
			}
			if reply.Truncated && client.Net != "tcp" {
				logrus.Debugf("truncated reply from [%v], retrying over TCP", addr)
				break
			}
			return reply, nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no nameserver configured")
	}
	return nil, lastErr
}
