// Package store implements the Result Store: the current
// {name -> Node Output} mapping plus a bounded FIFO ring of prior complete
// snapshots.
//
// put transitions a name from Stale to fresh; invalidate is idempotent;
// commit fails NotReady if any currently-tracked name is stale. The ring
// never exceeds its construction-time capacity — the oldest snapshot is
// evicted first.
package store
