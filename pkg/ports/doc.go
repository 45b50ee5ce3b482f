/*
Package ports defines the driven ports (interfaces) around path extraction.

These interfaces decouple the enumeration core from external collaborators,
so schemas can come from any source (a compiled YAML document, an in-memory
registry) and extracted paths can land anywhere (a JSON file, Redis, a test
collector).

# Key Interfaces

  - SchemaProvider: resolves a message name to its decoded type graph.
  - PathSink: accepts extracted path lists for storage.
*/
package ports
