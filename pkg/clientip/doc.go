// Package clientip resolves the address of the client that originated an
// HTTP request when the service runs behind reverse proxies.
//
// Headers are consulted in order: X-Forwarded-For (first valid entry),
// X-Real-IP, then the TCP peer address. Invalid values are skipped and an
// empty string is returned when nothing usable is found.
//
//	ip := clientip.GetIP(r)
//	log.Info("request", slog.String("client_ip", ip))
package clientip
