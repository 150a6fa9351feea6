// Package file loads snapshot data from a JSON file and republishes it into
// the in-memory stores.
//
// The loader can run one-shot or watch the file with fsnotify and reload on
// change. Editors and sync tools often emit several filesystem events per
// write, so reloads are coalesced through a rate limiter. Each reload swaps
// the full snapshot atomically; readers never observe a half-loaded state.
package file
