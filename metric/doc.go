// Package metric provides Prometheus instrumentation for codec,
// security, and transport activity.
//
// NewRegistry builds a private Prometheus registry carrying the core
// protocol metrics (encode/decode counts by format, signature and
// replay outcomes, request traffic) plus Go runtime collectors.
// Components register additional collectors through Register and the
// transport server serves the whole registry via Handler.
package metric
