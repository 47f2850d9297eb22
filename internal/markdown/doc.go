// Package markdown loads post files from a filesystem, splits their front
// matter from the body and renders CommonMark bodies through goldmark.
package markdown
