// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map that remembers insertion order and emits
itself as a mapping in that order.

Decoders build documents out of *Map so emitted keys appear in the order they
were read. FromNative brings unordered native maps into the same form with
sorted keys.
*/
package orderedmap
