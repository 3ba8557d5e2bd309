// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gateway provides the HTTP client for the remote inference endpoint.
//
// The gateway wraps a single outbound call: a (text, model) pair goes out as
// a POST with a JSON body, and either the response text or a classified
// error comes back. The client never retries; the caller decides what a
// failure means. Transport failures and structurally-absent response content
// are surfaced as distinct error types so callers can tell them apart even
// though the session controller currently maps both to user-facing messages.
package gateway
