// SPDX-License-Identifier: MIT

// Package store persists grid snapshots as files.
//
// A FileStore keeps one file per snapshot inside a directory, named
// <name>.json or <name>.yaml depending on its codec. SaveFile and LoadFile
// work on explicit paths and pick the codec from the extension.
//
//	fs, err := store.New("saves", store.WithCodec(store.YAML))
//	if err != nil { … }
//	if err := fs.Save("turn-12", g.Snapshot()); err != nil { … }
//	snap, err := fs.Load("turn-12")
//	g2, err := grid.Restore(ctx, snap)
package store
