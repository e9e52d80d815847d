// Package web holds the HTML templates and static assets. Building with
// -tags embed compiles them into the binary.
package web
