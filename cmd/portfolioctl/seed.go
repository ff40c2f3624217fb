package main

import (
	"fmt"
	"os"

	"github.com/hafiz-aliAwj/portfolio/internal/seed"
	"github.com/hafiz-aliAwj/portfolio/internal/services"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Create portfolio content from a YAML file",
	Long: `Create personal details, projects, skills, experience, education and
social links from a YAML file. Records are created in file order, so each
kind is sequenced the way it is listed.

Example:
  portfolioctl seed content.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		content, err := seed.Parse(file)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		sum, err := seed.Apply(ctx, seed.Stores{
			Details:     services.NewDetailsService(db),
			Projects:    services.NewProjectService(db),
			Skills:      services.NewSkillService(db),
			Experiences: services.NewExperienceService(db),
			Education:   services.NewEducationService(db),
			SocialLinks: services.NewSocialLinkService(db),
		}, content)

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d projects, %d skills, %d experiences, %d education entries, %d social links (details: %v)\n",
			sum.Projects, sum.Skills, sum.Experiences, sum.Education, sum.SocialLinks, sum.Details)
		return err
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
