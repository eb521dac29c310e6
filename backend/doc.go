// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package backend is the request boundary between a board and the homeboard API.

A board never speaks HTTP directly. It calls PerformAction with an endpoint
name and an optional payload and gets the raw response body back:

	raw, err := b.PerformAction(ctx, models.EndpointGetStudents, nil)

# Implementations

  - Client: talks to the homeboard API over HTTP. A nil payload is sent as a
    GET, anything else as a JSON POST.
  - Func: adapts a plain function, handy for tests and in-process wiring.

Non-2xx responses from Client come back as *StatusError.
*/
package backend
