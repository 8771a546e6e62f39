package cmd

import (
	"fmt"
	"strings"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/careerstu/careerstu/internal/skillgap"
	"github.com/spf13/cobra"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Compare skills against a job's requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		skillsCSV, _ := cmd.Flags().GetString("skills")
		jobLink, _ := cmd.Flags().GetString("job")
		requiredCSV, _ := cmd.Flags().GetString("required")

		if jobLink == "" && requiredCSV == "" {
			return fmt.Errorf("one of --job or --required is needed")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var learnerSkills []string
		if skillsCSV != "" {
			for _, sk := range strings.Split(skillsCSV, ",") {
				if sk = strings.TrimSpace(sk); sk != "" {
					learnerSkills = append(learnerSkills, sk)
				}
			}
		} else {
			l, err := resolveLearner(cmd, s)
			if err != nil {
				return err
			}
			skills, err := s.LearnerRepo().Skills(cmd.Context(), l.LearnerID)
			if err != nil {
				return err
			}
			for _, sk := range skills {
				learnerSkills = append(learnerSkills, sk.SkillName)
			}
		}

		jobTitle := ""
		if jobLink != "" {
			gw := corpus.NewEntGateway(s.Client())
			j, err := gw.JobByLink(cmd.Context(), jobLink)
			if err != nil {
				return err
			}
			requiredCSV = j.Skills
			jobTitle = j.Title
		}

		r := skillgap.Gap(learnerSkills, requiredCSV)

		if jobTitle != "" {
			fmt.Printf("Against: %s\n", jobTitle)
		}
		fmt.Printf("Match: %.1f%% (%d of %d required skills)\n",
			r.MatchPercent, len(r.Has), r.TotalRequired)
		if len(r.Has) > 0 {
			fmt.Printf("Have:  %s\n", strings.Join(r.Has, ", "))
		}
		if len(r.Needs) > 0 {
			fmt.Printf("Need:  %s\n", strings.Join(r.Needs, ", "))
		}
		return nil
	},
}

func init() {
	gapCmd.Flags().String("skills", "", "Comma-separated skills (defaults to the learner's stored skills)")
	gapCmd.Flags().String("job", "", "Job link to compare against")
	gapCmd.Flags().String("required", "", "Comma-separated required skills (instead of --job)")
}
