// Package sessiontransport moves sessions between HTTP requests and the
// session store using signed cookies.
//
// Load always yields a usable session: when the request carries no valid
// cookie a fresh anonymous session is created, so handlers never deal with
// the "no session" case. Destroy implements session teardown: the
// server-side record is removed when a backing store holds one, the cookie
// is cleared either way, and an optional completion callback runs last.
package sessiontransport
