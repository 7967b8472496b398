package docedit

// Package docedit is the document-transformation core of a schema-driven
// editor. It provides:
//
// - Path addressing over JSON-like documents (ParsePath/Get/Set) with
//   copy-on-write mutation along the addressed path
// - A recursive Schema value with declaration-ordered fields and JSON/YAML
//   round-tripping
// - A session Store holding the working document, baseline, dirty flag and
//   externally supplied validation issues (UpdateAtPath/Commit/Reset)
// - A single-slot Clipboard with structural pastability checks
// - A stable error model via Issues (path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; grid projection lives under
//   grid/, the CLI under cmd/docedit.
// - Documents are plain map[string]any / []any / scalar trees; every traversal
//   switches exhaustively on KindOf.
// - Shape mismatches between schema and document degrade to no-ops, never
//   panics; malformed path text is the only hard failure.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := docedit.DecodeDocumentJSON(data)
//	st := docedit.NewStore(doc)
//	p, err := docedit.ParsePath("users[0].address.city")
//	st.UpdateAtPath(p, "Berlin")
//	accepted, err := st.Commit(ctx, saveFn)
