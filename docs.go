/*

Package sender provides a client that sends DogStatsD metrics to a UDP collector.
Each call produces exactly one datagram of the form

	<name>:<value>|<type>[|@<sample_rate>][|#<tag>,<tag>,...]

where type is c (counter), g (gauge), h (histogram), s (set) or ms (timing).

Sending is fire-and-forget: packets lost to an unreachable collector or a closed
socket are never reported to the caller, only to the optional ErrorListener. The
only errors returned are caller mistakes, such as an empty metric name.

Example

The following would count a page view and time a request against a collector
listening on port 8125:

	client, err := sender.NewClient(context.Background(), sender.Config{
		Endpoint: "localhost:8125",
		Prefix:   "web.",
		Tags:     []string{"env:prod"},
	})

	client.Increment("page.views", 1, []string{"page:home"}, 1)

	handler := sender.TimedFunc(client, "request.latency", nil, 0.5, handle)
	handler(request)

A sample rate below one sends the metric on that fraction of calls and annotates
the packet with the rate so the collector can scale counts back up. A rate of
zero disables the metric without removing the call site.

*/
package sender
