package cmd

import (
	"fmt"
	"strings"

	"github.com/careerstu/careerstu/internal/riasec"
	"github.com/spf13/cobra"
)

var riasecCmd = &cobra.Command{
	Use:   "riasec",
	Short: "Classify, describe, and compare RIASEC codes",
}

var riasecClassifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Infer a RIASEC code from a skill list",
	RunE: func(cmd *cobra.Command, args []string) error {
		skillsCSV, _ := cmd.Flags().GetString("skills")
		title, _ := cmd.Flags().GetString("title")

		var phrases []string
		for _, s := range strings.Split(skillsCSV, ",") {
			if s = strings.TrimSpace(s); s != "" {
				phrases = append(phrases, s)
			}
		}

		r := riasec.Classify(phrases, title)

		fmt.Printf("Code:        %s\n", r.Code)
		fmt.Printf("Primary:     %s\n", r.PrimaryType)
		fmt.Printf("Confidence:  %.2f\n", r.Confidence)

		fmt.Println("\nScores:")
		for _, t := range riasec.AllTypes() {
			fmt.Printf("  %s  %-13s  %.1f\n", t, t.Name(), r.Scores[t])
		}

		if len(r.Matched) > 0 {
			fmt.Println("\nMatched indicators:")
			for _, t := range riasec.AllTypes() {
				if phrases := r.Matched[t]; len(phrases) > 0 {
					fmt.Printf("  %s: %s\n", t, strings.Join(phrases, ", "))
				}
			}
		}
		return nil
	},
}

var riasecDescribeCmd = &cobra.Command{
	Use:   "describe <code>",
	Short: "Describe a 3-letter RIASEC code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := riasec.Describe(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n\n", d.Code, d.Summary)
		fmt.Printf("Gift: %s\n", d.Gift)
		fmt.Printf("Themes: %s\n\n", strings.Join(d.Themes, ", "))
		for _, b := range d.Breakdown {
			fmt.Printf("  %s  %-13s  %s (%s)\n", b.Letter, b.Name, b.Title, b.Role)
		}
		return nil
	},
}

var riasecCompareCmd = &cobra.Command{
	Use:   "compare <learner-code> <job-code>",
	Short: "Score how well a learner's code fits a job's code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fit, err := riasec.CompareCodes(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s vs %s: %.2f (%s)\n", fit.LearnerCode, fit.JobCode, fit.Score, fit.Level)
		fmt.Println(fit.Recommendation)

		fmt.Printf("\nPrimary match:    %v\n", fit.PrimaryMatch)
		fmt.Printf("Secondary match:  %v\n", fit.SecondaryMatch)
		fmt.Printf("Tertiary match:   %v\n", fit.TertiaryMatch)
		if len(fit.SharedTypes) > 0 {
			names := make([]string, len(fit.SharedTypes))
			for i, t := range fit.SharedTypes {
				names[i] = t.Name()
			}
			fmt.Printf("Shared types:     %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

func init() {
	riasecClassifyCmd.Flags().String("skills", "", "Comma-separated skill phrases (required)")
	riasecClassifyCmd.Flags().String("title", "", "Job title for the title bonus")
	_ = riasecClassifyCmd.MarkFlagRequired("skills")

	riasecCmd.AddCommand(riasecClassifyCmd)
	riasecCmd.AddCommand(riasecDescribeCmd)
	riasecCmd.AddCommand(riasecCompareCmd)
}
