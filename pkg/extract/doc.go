/*
Package extract enumerates target-field paths in message type graphs.

Given the root of a decoded message definition and a set of targets (bit
strings, octet strings, integers, variable-size containers), the Enumerator
walks the graph and returns every distinct root-to-field path whose terminal
node matches a target. Each path carries the sequence of choice-alternative
selections required to make it reachable in a concrete message instance,
listed outermost choice first.

Type graphs can be recursive, so the walk keeps a visited-identity set
scoped to the current root-to-node chain: a node already on the chain marks
a recursive edge and is silently skipped. The same node reachable through
two sibling positions is visited once per position and yields one path per
position.

The enumeration is a pure function over its inputs. Enumerators hold no
state between calls and may be shared across goroutines as long as the type
graph itself is not mutated. For untrusted or pathologically deep (but
acyclic) schemas, WithBudget caps the number of node visits and fails fast
with a BudgetError instead of walking the whole expansion.
*/
package extract
