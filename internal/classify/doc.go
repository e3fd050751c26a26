// Package classify implements the heuristic status classifier: a pure,
// deterministic decision policy that turns a probe result into one of the
// six domain statuses, or defers to the registry lookup when the probe
// was inconclusive. All keyword tables and thresholds live in a Ruleset
// so tests can substitute fixtures.
package classify
