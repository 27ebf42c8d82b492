// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tag prefix table: handle -> prefix, per spec.md §4.4. Verbatim tags
// (!<IRI>) bypass this table entirely.

package core

import "fmt"

type tagTable struct {
	prefixes map[string]string
	// byDirective tracks which handles a %TAG directive has already set in
	// the current document. The default "!" and "!!" bindings are not in
	// here, so a directive may override either of them once; a second
	// directive for the same handle (default or custom) is the error.
	byDirective map[string]bool
}

func newTagTable() *tagTable {
	t := &tagTable{}
	t.reset()
	return t
}

// reset is called between documents (spec.md §4.4).
func (t *tagTable) reset() {
	t.prefixes = make(map[string]string)
	t.byDirective = make(map[string]bool)
	t.setupDefaults()
}

func (t *tagTable) setupDefaults() {
	t.prefixes["!"] = "!"
	t.prefixes["!!"] = "tag:yaml.org,2002:"
}

// add fails if handle was already set by a %TAG directive earlier in this
// document — re-definition of a handle within one document is a fatal
// TAG-directive error. Overriding a still-default handle is allowed.
func (t *tagTable) add(handle, prefix string) error {
	if t.byDirective[handle] {
		return fmt.Errorf("the %q tag handle is redefined", handle)
	}
	t.byDirective[handle] = true
	t.prefixes[handle] = prefix
	return nil
}

// resolve concatenates the handle's prefix with suffix. A missing handle
// is fatal.
func (t *tagTable) resolve(handle, suffix string) (string, error) {
	prefix, ok := t.prefixes[handle]
	if !ok {
		return "", fmt.Errorf("found undefined tag handle %q", handle)
	}
	return prefix + suffix, nil
}
