// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

// Package inventory scans a namespace and builds the reachability report
// of every service in it.
package inventory

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/kubereach/kubereach/pkg/reachability"
)

// maxConcurrentFetches caps the number of in-flight endpoints lookups.
const maxConcurrentFetches = 8

// ServiceReport is the reachability inventory of a single service.
type ServiceReport struct {
	Name      string                 `yaml:"name" json:"name"`
	Namespace string                 `yaml:"namespace" json:"namespace"`
	Topology  string                 `yaml:"topology" json:"topology"`
	DNS       string                 `yaml:"dns" json:"dns"`
	Age       string                 `yaml:"age,omitempty" json:"age,omitempty"`
	Addresses []reachability.Address `yaml:"addresses" json:"addresses"`
}

// ScanOptions narrows what a scan includes.
type ScanOptions struct {
	// NameFilter keeps only services whose name matches; nil keeps all.
	NameFilter *regexp.Regexp
}

// CompileNameFilter compiles pattern into a service name filter.
// An empty pattern means no filtering.
func CompileNameFilter(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid service name filter %q: %w", pattern, err)
	}
	return re, nil
}

// Scanner resolves the reachability of services through a Kubernetes client.
type Scanner struct {
	client kubernetes.Interface
}

func NewScanner(client kubernetes.Interface) *Scanner {
	return &Scanner{client: client}
}

// Scan lists the services of namespace and resolves the addresses of each.
// Report order follows the service list order. A failure to list services
// fails the scan; a failure to fetch the endpoints of a single service only
// empties its pod section.
func (s *Scanner) Scan(ctx context.Context, namespace string, opts ScanOptions) ([]ServiceReport, error) {
	services, err := s.client.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list services in namespace %q: %w", namespace, err)
	}

	var selected []corev1.Service
	for _, svc := range services.Items {
		if opts.NameFilter != nil && !opts.NameFilter.MatchString(svc.Name) {
			logrus.Debugf("service %q does not match the name filter", svc.Name)
			continue
		}
		selected = append(selected, svc)
	}

	reports := make([]ServiceReport, len(selected))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentFetches)
	for i, svc := range selected {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			endpoints := s.endpointsFor(ctx, namespace, svc.Name)
			reports[i] = buildReport(&svc, endpoints, namespace)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// endpointsFor returns the endpoints backing the named service, or nil when
// they cannot be fetched.
func (s *Scanner) endpointsFor(ctx context.Context, namespace, name string) *corev1.Endpoints {
	endpoints, err := s.client.CoreV1().Endpoints(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			logrus.Debugf("service %q has no endpoints", name)
		} else {
			logrus.WithError(err).Warnf("failed to get endpoints for service %q", name)
		}
		return nil
	}
	return endpoints
}

func buildReport(svc *corev1.Service, endpoints *corev1.Endpoints, namespace string) ServiceReport {
	report := ServiceReport{
		Name:      svc.Name,
		Namespace: namespace,
		Topology:  reachability.ClassifyService(svc).Kind,
		DNS:       reachability.ServiceDNS(svc.Name, namespace),
		Addresses: reachability.Resolve(svc, endpoints, namespace),
	}
	if !svc.CreationTimestamp.IsZero() {
		report.Age = units.HumanDuration(time.Since(svc.CreationTimestamp.Time))
	}
	return report
}
