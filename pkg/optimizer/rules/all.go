// Package rules registers every optimization rule with pkg/optimizer's
// global registry. Import this package (for its side effects) wherever a
// Pipeline needs the full rule set available.
//
// Rules, in declared pass order:
//   - Simplify: algebraic, Boolean, and NULL-propagation rewrites
//   - Canonicalize: literal/column comparison and NOT-wrapped comparison form
//   - QuoteIdentifiers: marks bare identifiers that need quoting
//   - EliminateCTEs: drops CTEs with zero live references, cascading
//   - NormalizePredicates: flattens/dedupes/simplifies AND/OR trees
//   - PushdownPredicates: moves a WHERE predicate into a FROM-subquery
//   - MergeSubqueries: inlines a trivial single-table FROM-subquery
//   - JoinReordering: stable-sorts joins by a selectivity heuristic
//   - ProjectionPushdown: narrows a FROM-subquery's projection list
//   - AnnotateTypes: non-rewriting type and nullability inference
//   - QualifyColumns: prepends an unambiguous owning table to bare columns
package rules
