package cmd

import (
	"testing"
)

func TestDeleteCmd(t *testing.T) {
	t.Run("command structure", func(t *testing.T) {
		if deleteCmd.Use != "delete [number]" {
			t.Errorf("deleteCmd.Use = %q, want %q", deleteCmd.Use, "delete [number]")
		}
		if deleteCmd.Args == nil {
			t.Error("deleteCmd.Args should be set")
		}
	})

	t.Run("yes flag", func(t *testing.T) {
		flag := deleteCmd.Flags().Lookup("yes")
		if flag == nil {
			t.Fatal("deleteCmd should have --yes flag")
		}
		if flag.Shorthand != "y" {
			t.Errorf("yes flag shorthand = %q, want %q", flag.Shorthand, "y")
		}
	})

	t.Run("requires exactly one arg", func(t *testing.T) {
		if err := deleteCmd.Args(deleteCmd, []string{}); err == nil {
			t.Error("expected error for missing arg")
		}
		if err := deleteCmd.Args(deleteCmd, []string{"1", "2"}); err == nil {
			t.Error("expected error for extra args")
		}
		if err := deleteCmd.Args(deleteCmd, []string{"1"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
