// Package graphio is the persistence collaborator for core.Graph: a small
// JSON document codec plus file helpers.
//
// What:
//
//   - Document: the serialized form {nodes: [{id,x,y}], edges: [{a,b,directed}]}.
//   - Marshal(g) / Unmarshal(data): graph ↔ JSON bytes.
//   - Save(g, path) / Load(path): the same through the filesystem.
//
// Round-trip contract: edge endpoints and directed flags are preserved;
// original node ids are not — Unmarshal remaps every node through
// core.Graph.AddNode, so a loaded graph always has a dense, freshly
// allocated id space. Coordinates ride along untouched.
//
// Errors:
//
//   - ErrNilGraph    – Marshal/Save called with a nil graph.
//   - ErrBadDocument – decoded document references unknown or self-loop
//     endpoints, or duplicates an edge.
//   - json / os errors are wrapped with %w and reachable via errors.As/Is.
package graphio
