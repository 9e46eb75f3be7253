/*
Package observability provides tools for monitoring the isaw engine.

It turns the engine's lifecycle hooks into Prometheus counters (candidates examined,
rejections per filter stage, arrangements emitted, caps reached) held in a private
registry, and writes them to a node_exporter style textfile so a single CLI run can
be inspected without any network listener.
*/
package observability
