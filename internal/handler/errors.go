// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the stub API
// configuration carries no HTTP address, resulting in no transport handler
// being initialized. This is treated as a fatal misconfiguration and causes
// the stub API to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
