// Package bundle defines the skill-bundle abstraction shared by the
// validator, packager, and scaffolder: a directory identified by its folder
// name that carries a SKILL.md metadata file with YAML frontmatter followed
// by free-form documentation. The package splits frontmatter from body,
// parses the metadata block, and validates it against an embedded JSON
// Schema for callers that want structured findings beyond the line-based
// baseline checks.
package bundle
