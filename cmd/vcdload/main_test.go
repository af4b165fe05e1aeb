package main

import "testing"

func TestCommandTreeShape(t *testing.T) {
	load := newLoadCommand()
	if load.Use != "load <path>" {
		t.Errorf("load.Use = %q", load.Use)
	}
	if load.Flags().Lookup("format") == nil {
		t.Errorf("load command missing --format flag")
	}

	view := newViewCommand()
	if view.Use != "view <path>" {
		t.Errorf("view.Use = %q", view.Use)
	}
	if view.Flags().Lookup("signal") == nil {
		t.Errorf("view command missing --signal flag")
	}
}
