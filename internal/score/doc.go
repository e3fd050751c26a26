// Package score computes the acquisition-worthiness score: an additive
// 1-10 model over a domain record's age, length, TLD, popularity breadth,
// keyword value, and brandability, with a per-dimension breakdown for
// auditability. Scoring is pure and deterministic.
package score
