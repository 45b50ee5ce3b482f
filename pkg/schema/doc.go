// Package schema models decoded ASN.1-style message type graphs.
//
// A message definition is a graph of Type nodes: sequences (records of named
// fields), choices (tagged unions), sequence-of containers, and leaf fields.
// The graph is not a tree — a named type can reference itself directly or
// through a chain of other types, so walking it naively loops forever. Node
// identity is pointer identity; node names describe the position at which a
// node is used (a field name, an alternative name, a declared type name) and
// are never unique across a graph.
//
// Basic usage:
//
//	msg := schema.NewSequence("RRCMessage", []schema.Field{
//	    {Name: "transactionID", Type: schema.NewLeaf("transactionID", schema.KindInteger)},
//	    {Name: "dedicatedInfo", Type: schema.NewLeaf("dedicatedInfo", schema.KindOctetString)},
//	})
//
// Graphs built here are treated as read-only by every consumer, which makes
// concurrent traversal by independent callers safe. Traversal state (visited
// sets, path accumulators) always lives with the caller, never on the nodes.
package schema
