// Package prompt is a line-oriented front-end built on survey: it asks for a
// formatter, reads raw values and prints what the formatted field would hold.
package prompt
