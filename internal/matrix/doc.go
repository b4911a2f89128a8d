// Package matrix generates the CI build matrix from a written toolbox
// manifest. It is the downstream consumer of the aggregator's output: every
// buildable image version with a resolvable build context and registry image
// name becomes one matrix entry for the container build workflow.
package matrix
