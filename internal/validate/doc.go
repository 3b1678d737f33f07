// Package validate implements the skill-bundle validation pipeline. A run
// executes a fixed sequence of checks (structure, frontmatter, metadata
// rules, scripts, packaging hygiene) against one bundle and produces a
// Report separating blocking issues from advisory warnings. Every check
// category runs to completion regardless of earlier failures so that a
// single run surfaces all problems at once.
package validate
