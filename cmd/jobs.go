package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search and import the jobs corpus",
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search jobs by title, skills, location, or level",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		skillsCSV, _ := cmd.Flags().GetString("skills")
		location, _ := cmd.Flags().GetString("location")
		level, _ := cmd.Flags().GetString("level")
		code, _ := cmd.Flags().GetString("code")
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		gw := corpus.NewEntGateway(s.Client())

		var jobs []corpus.Job
		if code != "" {
			jobs, err = gw.JobsByCode(cmd.Context(), code, len(code) == 1, level, limit)
		} else {
			var skills []string
			for _, sk := range strings.Split(skillsCSV, ",") {
				if sk = strings.TrimSpace(sk); sk != "" {
					skills = append(skills, sk)
				}
			}
			jobs, err = gw.SearchJobs(cmd.Context(), corpus.JobQuery{
				Title:    title,
				Skills:   skills,
				Location: location,
				Level:    level,
				Limit:    limit,
			})
		}
		if err != nil {
			return err
		}

		if len(jobs) == 0 {
			fmt.Println("No jobs found.")
			return nil
		}

		fmt.Printf("%-24s  %-28s  %-16s  %-10s  %-4s  %s\n",
			"Link", "Title", "Company", "Level", "Code", "Conf")
		fmt.Println(strings.Repeat("─", 100))
		for _, j := range jobs {
			fmt.Printf("%-24s  %-28s  %-16s  %-10s  %-4s  %.2f\n",
				truncate(j.Link, 24), truncate(j.Title, 28), truncate(j.Company, 16),
				j.Level, j.RiasecCode, j.RiasecConfidence)
		}
		return nil
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <link>",
	Short: "Show one job's full details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		j, err := corpus.NewEntGateway(s.Client()).JobByLink(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Link:       %s\n", j.Link)
		fmt.Printf("Title:      %s\n", j.Title)
		fmt.Printf("Company:    %s\n", j.Company)
		fmt.Printf("Location:   %s\n", j.Location)
		fmt.Printf("Level:      %s\n", j.Level)
		fmt.Printf("RIASEC:     %s (%.2f)\n", j.RiasecCode, j.RiasecConfidence)
		fmt.Printf("Skills:     %s\n", j.Skills)
		return nil
	},
}

var jobsSalaryCmd = &cobra.Command{
	Use:   "salary <title>",
	Short: "Show salary and demand data for a job title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := corpus.NewEntGateway(s.Client()).SalaryInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No salary data found.")
			return nil
		}

		printSalaryTable(recs)
		return nil
	},
}

var jobsDemandCmd = &cobra.Command{
	Use:   "demand",
	Short: "List high-demand job titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		riasecType, _ := cmd.Flags().GetString("type")
		minSalary, _ := cmd.Flags().GetInt("min-salary")
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := corpus.NewEntGateway(s.Client()).HighDemandJobs(cmd.Context(), corpus.DemandQuery{
			RiasecType: riasecType,
			MinSalary:  minSalary,
			Limit:      limit,
		})
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No high-demand titles found.")
			return nil
		}

		printSalaryTable(recs)
		return nil
	},
}

var jobsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import classified jobs and salary data from CSV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		jobsPath, _ := cmd.Flags().GetString("jobs")
		salariesPath, _ := cmd.Flags().GetString("salaries")
		if jobsPath == "" && salariesPath == "" {
			return fmt.Errorf("one of --jobs or --salaries is needed")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if jobsPath != "" {
			f, err := os.Open(jobsPath)
			if err != nil {
				return err
			}
			n, err := corpus.ImportJobs(cmd.Context(), s.Client(), f)
			f.Close()
			if err != nil {
				return fmt.Errorf("import %s: %w", jobsPath, err)
			}
			fmt.Printf("Imported %d job rows from %s\n", n, jobsPath)
		}

		if salariesPath != "" {
			f, err := os.Open(salariesPath)
			if err != nil {
				return err
			}
			n, err := corpus.ImportSalaries(cmd.Context(), s.Client(), f)
			f.Close()
			if err != nil {
				return fmt.Errorf("import %s: %w", salariesPath, err)
			}
			fmt.Printf("Imported %d salary rows from %s\n", n, salariesPath)
		}
		return nil
	},
}

func printSalaryTable(recs []corpus.SalaryRecord) {
	fmt.Printf("%-28s  %10s  %-16s  %-5s  %8s\n",
		"Title", "Median", "Demand", "Code", "Postings")
	fmt.Println(strings.Repeat("─", 76))
	for _, r := range recs {
		fmt.Printf("%-28s  %10s  %-16s  %-5s  %8d\n",
			truncate(r.JobTitle, 28), formatSalary(r.MedianSalary),
			truncate(r.MarketDemand, 16), r.RiasecCode, r.RecentPostings)
	}
}

func formatSalary(usd int) string {
	if usd <= 0 {
		return "?"
	}
	return fmt.Sprintf("$%dk", usd/1000)
}

func init() {
	jobsSearchCmd.Flags().String("title", "", "Title substring")
	jobsSearchCmd.Flags().String("skills", "", "Comma-separated skills (any match)")
	jobsSearchCmd.Flags().String("location", "", "Location substring")
	jobsSearchCmd.Flags().String("level", "", "Experience level (Entry, Associate, Mid-Senior, Director)")
	jobsSearchCmd.Flags().String("code", "", "RIASEC code (one letter matches the primary type)")
	jobsSearchCmd.Flags().IntP("limit", "n", 10, "Max results")

	jobsDemandCmd.Flags().String("type", "", "Primary RIASEC type letter")
	jobsDemandCmd.Flags().Int("min-salary", 0, "Minimum median salary in USD")
	jobsDemandCmd.Flags().IntP("limit", "n", 10, "Max results")

	jobsImportCmd.Flags().String("jobs", "", "Path to a classified jobs CSV")
	jobsImportCmd.Flags().String("salaries", "", "Path to a salary reference CSV")

	jobsCmd.AddCommand(jobsSearchCmd)
	jobsCmd.AddCommand(jobsShowCmd)
	jobsCmd.AddCommand(jobsSalaryCmd)
	jobsCmd.AddCommand(jobsDemandCmd)
	jobsCmd.AddCommand(jobsImportCmd)
}
