// Package grouping formats plain numeric strings with a thousands separator
// and strips it again. It also renders values with a fixed number of
// fractional digits, the normalisation amount fields apply on blur.
package grouping
