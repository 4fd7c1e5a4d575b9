// SPDX-FileCopyrightText: Copyright The Kubereach Authors
// SPDX-License-Identifier: Apache-2.0

package yqutil

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestEvaluateExpressionSimple(t *testing.T) {
	expression := `.topology = "Headless" | .dns = "db.prod.svc.cluster.local"`
	content := `
# Service topology
topology: null

# Service DNS name
dns: null
`
	// Note: yq will not explicitly quote strings, when not needed
	expected := `
# Service topology
topology: Headless

# Service DNS name
dns: db.prod.svc.cluster.local
`
	out, err := EvaluateExpression(expression, []byte(content))
	assert.NilError(t, err)
	assert.Equal(t, expected, string(out))
}

func TestEvaluateExpressionScalar(t *testing.T) {
	expression := `.clusterDomain`
	content := `clusterDomain: svc.cluster.local
schemeMap:
  TCP: http
`
	out, err := EvaluateExpression(expression, []byte(content))
	assert.NilError(t, err)
	assert.Equal(t, "svc.cluster.local\n", string(out))
}

func TestEvaluateExpressionError(t *testing.T) {
	expression := `topology: Headless`
	_, err := EvaluateExpression(expression, []byte(""))
	assert.ErrorContains(t, err, "invalid input text")
}
