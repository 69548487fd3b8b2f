package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/GTDGit/gtd_bi/internal/analytics"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"sales", "learning", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}

	sales, _, _ := root.Find([]string{"sales"})
	for _, flag := range []string{"region", "out", "csv"} {
		if sales.Flags().Lookup(flag) == nil {
			t.Errorf("sales is missing --%s", flag)
		}
	}
	if got := sales.Flags().Lookup("region").DefValue; got != analytics.AllRegionsValue {
		t.Errorf("default region = %q", got)
	}
}

func TestSalesRejectsBlankRegion(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "bi")
	t.Setenv("DB_NAME", "ventes")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"sales", "--region", "  "})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for blank region")
	}
	if !errors.Is(err, analytics.ErrEmptyRegion) {
		t.Errorf("err = %v, want %v", err, analytics.ErrEmptyRegion)
	}
}
