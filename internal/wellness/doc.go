// Package wellness implements the rule-based recommendation engine and the
// small derived computations around a user's health log.
//
// The engine reads a bounded window of the owner's most recent records,
// computes aggregate signals and turns them into advisory text:
//
//	window (≤7, newest first) ─▶ Analyze ─▶ Signals ─▶ Compose ─▶ text
//
// Generate wires that pipeline to a RecordSource and a RecommendationSink,
// so a single call performs one read and at most one append.
//
// Besides the engine the package also builds chart series (BuildTrends) and
// computes reminder trigger times (NextFire).
package wellness
