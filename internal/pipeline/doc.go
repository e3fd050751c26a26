// Package pipeline drives the per-domain evaluation sequence
// (probe, classify, registry fallback, score) and fans it out across a
// bounded pool of concurrent workers. Workers share no mutable state;
// each produces an independent domain record collected at a single
// synchronized point.
package pipeline
