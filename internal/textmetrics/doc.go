// Package textmetrics provides the small text and color measures used by
// the landing page and naming tools: syllable counts, Flesch-Kincaid
// reading level and WCAG contrast ratios.
package textmetrics
