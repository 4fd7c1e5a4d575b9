// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

// Package kubeclient builds the Kubernetes client handle used by the
// inventory commands.
package kubeclient

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// DefaultPaths returns the kubeconfig candidates in resolution order:
// every entry of $KUBECONFIG, then ~/.kube/config.
func DefaultPaths() []string {
	var paths []string
	for _, p := range filepath.SplitList(os.Getenv("KUBECONFIG")) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".kube", "config"))
	}
	return paths
}

// New builds a client from the given kubeconfig path. With an empty path
// the candidates from DefaultPaths are tried in order, then the in-cluster
// configuration.
func New(kubeconfig string) (kubernetes.Interface, error) {
	if kubeconfig != "" {
		return clientForKubeconfig(kubeconfig)
	}

	for _, candidate := range DefaultPaths() {
		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("stat kubeconfig %s failed: %w", candidate, err)
		}
		return clientForKubeconfig(candidate)
	}

	restConfig, err := rest.InClusterConfig()
	if err != nil {
		if errors.Is(err, rest.ErrNotInCluster) {
			return nil, errors.New("no valid kubeconfig found")
		}
		return nil, err
	}
	return kubernetes.NewForConfig(restConfig)
}

func clientForKubeconfig(kubeconfig string) (kubernetes.Interface, error) {
	restConfig, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("build kubeconfig from %s failed: %w", kubeconfig, err)
	}
	return kubernetes.NewForConfig(restConfig)
}
