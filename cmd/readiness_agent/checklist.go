package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/proof"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage the built-in manual test checklist",
}

var checklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List test checklist items and their state",
	RunE:  runChecklistList,
}

var checklistCheckCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Mark a test checklist item as passed",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setChecklistItem(args[0], true)
	},
}

var checklistUncheckCmd = &cobra.Command{
	Use:   "uncheck <item-id>",
	Short: "Clear a test checklist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setChecklistItem(args[0], false)
	},
}

var checklistResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all test checklist items",
	RunE:  runChecklistReset,
}

var (
	checklistStore  string
	checklistConfig string
)

func init() {
	checklistCmd.PersistentFlags().StringVar(&checklistStore, "store", "", "Path to the local store file")
	checklistCmd.PersistentFlags().StringVar(&checklistConfig, "config", "", "Path to JSON config file")

	checklistCmd.AddCommand(checklistListCmd, checklistCheckCmd, checklistUncheckCmd, checklistResetCmd)
	rootCmd.AddCommand(checklistCmd)
}

func runChecklistList(_ *cobra.Command, _ []string) error {
	_, proofState, closeStores, err := openStores(checklistStore, checklistConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	state := proofState.Checklist()
	for _, item := range proof.TestItems {
		mark := " "
		if state[item.ID] {
			mark = "x"
		}
		fmt.Fprintf(os.Stdout, "[%s] %-20s %s\n", mark, item.ID, item.Label)
	}
	if proofState.ChecklistComplete() {
		fmt.Fprintln(os.Stdout, "All checklist items passed.")
	}
	return nil
}

func setChecklistItem(id string, checked bool) error {
	_, proofState, closeStores, err := openStores(checklistStore, checklistConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	found := false
	for _, item := range proof.TestItems {
		if item.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown checklist item: %s", id)
	}

	proofState.SetChecklistItem(id, checked)
	return nil
}

func runChecklistReset(_ *cobra.Command, _ []string) error {
	_, proofState, closeStores, err := openStores(checklistStore, checklistConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	proofState.ResetChecklist()
	return nil
}
