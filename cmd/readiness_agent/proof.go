package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-readiness/internal/proof"
)

var proofCmd = &cobra.Command{
	Use:   "proof",
	Short: "Track proof-of-work steps, links, and shipped status",
}

var proofStepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the 8 proof steps and their completion state",
	RunE:  runProofSteps,
}

var proofCompleteStepCmd = &cobra.Command{
	Use:   "complete-step <step-id>",
	Short: "Mark a proof step as complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setProofStep(args[0], true)
	},
}

var proofUncompleteStepCmd = &cobra.Command{
	Use:   "uncomplete-step <step-id>",
	Short: "Clear a proof step",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setProofStep(args[0], false)
	},
}

var proofLinksCmd = &cobra.Command{
	Use:   "links",
	Short: "Show the submitted artifact links and their validity",
	RunE:  runProofLinks,
}

var proofSetLinksCmd = &cobra.Command{
	Use:   "set-links",
	Short: "Store the three artifact links",
	RunE:  runProofSetLinks,
}

var proofStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show shipped status and the final submission text",
	RunE:  runProofStatus,
}

var (
	proofStore       string
	proofConfig      string
	proofLovableURL  string
	proofGithubURL   string
	proofDeployedURL string
)

func init() {
	proofCmd.PersistentFlags().StringVar(&proofStore, "store", "", "Path to the local store file")
	proofCmd.PersistentFlags().StringVar(&proofConfig, "config", "", "Path to JSON config file")

	proofSetLinksCmd.Flags().StringVar(&proofLovableURL, "lovable", "", "Project workspace URL")
	proofSetLinksCmd.Flags().StringVar(&proofGithubURL, "github", "", "GitHub repository URL")
	proofSetLinksCmd.Flags().StringVar(&proofDeployedURL, "deployed", "", "Live deployment URL")

	proofCmd.AddCommand(proofStepsCmd, proofCompleteStepCmd, proofUncompleteStepCmd, proofLinksCmd, proofSetLinksCmd, proofStatusCmd)
	rootCmd.AddCommand(proofCmd)
}

func runProofSteps(_ *cobra.Command, _ []string) error {
	_, proofState, closeStores, err := openStores(proofStore, proofConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	completion := proofState.StepCompletion()
	for _, step := range proof.Steps {
		mark := " "
		if completion[step.ID] {
			mark = "x"
		}
		fmt.Fprintf(os.Stdout, "[%s] %s. %s\n", mark, step.ID, step.Label)
	}
	return nil
}

func setProofStep(id string, completed bool) error {
	_, proofState, closeStores, err := openStores(proofStore, proofConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	known := false
	for _, step := range proof.Steps {
		if step.ID == id {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown proof step: %s", id)
	}

	proofState.SetStepCompletion(id, completed)
	return nil
}

func runProofLinks(_ *cobra.Command, _ []string) error {
	_, proofState, closeStores, err := openStores(proofStore, proofConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	sub := proofState.Submission()
	printLink := func(label, url string) {
		state := "missing"
		if url != "" {
			state = "invalid"
			if proofState.ValidURL(url) {
				state = "ok"
			}
		}
		fmt.Fprintf(os.Stdout, "%-18s %-8s %s\n", label, state, url)
	}
	printLink("Lovable Project:", sub.LovableURL)
	printLink("GitHub Repo:", sub.GithubURL)
	printLink("Deployment:", sub.DeployedURL)
	return nil
}

func runProofSetLinks(_ *cobra.Command, _ []string) error {
	_, proofState, closeStores, err := openStores(proofStore, proofConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	sub := proofState.Submission()
	if proofLovableURL != "" {
		sub.LovableURL = proofLovableURL
	}
	if proofGithubURL != "" {
		sub.GithubURL = proofGithubURL
	}
	if proofDeployedURL != "" {
		sub.DeployedURL = proofDeployedURL
	}
	proofState.SetSubmission(sub)

	if !proofState.ValidProofLinks() {
		fmt.Fprintln(os.Stderr, "Warning: not all links are valid http(s) URLs yet")
	}
	return nil
}

func runProofStatus(_ *cobra.Command, _ []string) error {
	_, proofState, closeStores, err := openStores(proofStore, proofConfig)
	if err != nil {
		return err
	}
	defer closeStores()

	completion := proofState.StepCompletion()
	done := 0
	for _, step := range proof.Steps {
		if completion[step.ID] {
			done++
		}
	}

	fmt.Fprintf(os.Stdout, "Steps complete: %d/%d\n", done, len(proof.Steps))
	fmt.Fprintf(os.Stdout, "Checklist complete: %t\n", proofState.ChecklistComplete())
	fmt.Fprintf(os.Stdout, "Links valid: %t\n", proofState.ValidProofLinks())
	fmt.Fprintf(os.Stdout, "Shipped: %t\n", proofState.Shipped())

	if proofState.Shipped() {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, proofState.FinalSubmissionText())
	}
	return nil
}
