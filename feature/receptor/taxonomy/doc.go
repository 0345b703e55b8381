// Package taxonomy resolves incoming category and tag names to local terms.
//
// Each name is translated under the category or tag context, slugified, and
// looked up by (taxonomy, slug). Missing terms are created with the translated
// name. A failure on one term is logged and does not affect the others.
package taxonomy
