// Package scaffold generates new skill bundles from embedded template sets.
// It powers the "skillpack create" command. Template kinds form a fixed,
// immutable registry (simple, intermediate, complex) mapping to directory
// structures of increasing complexity, from a bare SKILL.md to a bundle
// with scripts, reference data, and examples. Generated frontmatter is
// post-validated against the bundle JSON Schema and any findings are
// reported as warnings.
package scaffold
