// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import "github.com/cockroachdb/errors"

// ErrIndexOutOfRange is returned by a Trie when its map function sends a
// symbol outside [0, options).
var ErrIndexOutOfRange = errors.New("ordered: symbol index out of range")
