package uio

import (
	"fmt"
	"io"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jedib0t/go-pretty/v6/table"
)

type DebugEntry struct {
	Value any
	Kind  Kind
	Refs  int
}

// Debug maps the structural key of every Instance reachable from root to
// its cached value. It does not resolve anything.
func Debug(root any) map[string]DebugEntry {
	entries := map[string]DebugEntry{}
	inst, ok := root.(*Instance)
	if !ok {
		return entries
	}
	visited := mapset.NewThreadUnsafeSet[*Instance]()
	collect(inst, visited, entries)
	return entries
}

func collect(inst *Instance, visited mapset.Set[*Instance], entries map[string]DebugEntry) {
	if !visited.Add(inst) {
		return
	}
	entries[inst.key] = DebugEntry{
		Value: inst.value,
		Kind:  inst.kind,
		Refs:  inst.refs,
	}
	for _, dep := range inst.deps {
		if child, ok := dep.(*Instance); ok {
			collect(child, visited, entries)
		}
	}
}

// Debug is Debug of the Observer's current tree.
func (o *Observer) Debug() map[string]DebugEntry {
	return Debug(o.root)
}

// PrintDebug renders the Observer's Instances as a table.
func (o *Observer) PrintDebug(w io.Writer) {
	entries := o.Debug()
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetTitle(fmt.Sprintf("value: %v", o.value))
	tbl.AppendHeader(table.Row{"key", "kind", "refs", "value"})
	for _, key := range keys {
		e := entries[key]
		tbl.AppendRow(table.Row{key, e.Kind, e.Refs, fmt.Sprintf("%v", e.Value)})
	}
	tbl.Render()
}

func (o *Observer) printDebug() {
	if o.debug != nil {
		o.PrintDebug(o.debug)
	}
}
