/*
Package observability turns explorer lifecycle hooks into metrics and logs.

Metrics are plain prometheus collectors registered on a caller-supplied
registry; WriteText dumps them in the text exposition format for one-shot
CLI runs where no scrape endpoint exists.
*/
package observability
