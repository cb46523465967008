// Package content computes the numeric demonstrations shown by the screens
// and formats them as plain text lines. Nothing here knows about canvases or
// terminals; screens treat these functions as content providers.
//
// Methods that cannot produce a meaningful value (for example a root search
// over a bracket without a sign change) return NaN, which is printed as-is.
package content
