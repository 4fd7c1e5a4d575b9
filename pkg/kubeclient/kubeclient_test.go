// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package kubeclient

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

const minimalKubeconfig = `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://127.0.0.1:6443
  name: test
contexts:
- context:
    cluster: test
    user: test
  name: test
current-context: test
users:
- name: test
  user:
    token: dummy
`

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	assert.NilError(t, os.WriteFile(path, []byte(minimalKubeconfig), 0o600))
	return path
}

func TestNewWithExplicitPath(t *testing.T) {
	client, err := New(writeKubeconfig(t))
	assert.NilError(t, err)
	assert.Assert(t, client != nil)
}

func TestNewWithBrokenExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	assert.NilError(t, os.WriteFile(path, []byte("not a kubeconfig"), 0o600))
	_, err := New(path)
	assert.ErrorContains(t, err, "build kubeconfig from")
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("KUBECONFIG", writeKubeconfig(t))
	client, err := New("")
	assert.NilError(t, err)
	assert.Assert(t, client != nil)
}

func TestNewWithoutAnyConfig(t *testing.T) {
	t.Setenv("KUBECONFIG", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("KUBERNETES_SERVICE_HOST", "")
	_, err := New("")
	assert.ErrorContains(t, err, "no valid kubeconfig found")
}

func TestDefaultPaths(t *testing.T) {
	first := filepath.Join(t.TempDir(), "first")
	second := filepath.Join(t.TempDir(), "second")
	t.Setenv("KUBECONFIG", first+string(filepath.ListSeparator)+second)
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths := DefaultPaths()
	assert.DeepEqual(t, paths, []string{first, second, filepath.Join(home, ".kube", "config")})
}
