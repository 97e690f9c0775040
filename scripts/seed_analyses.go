package main

import (
	"log"
	"os"
	"strings"

	"github.com/resumerrs/resume-analyzer-api/internal/config"
	"github.com/resumerrs/resume-analyzer-api/internal/models"
	"github.com/resumerrs/resume-analyzer-api/internal/repositories"
	"github.com/resumerrs/resume-analyzer-api/internal/services"
)

// Seeds the analyses table with sample matches so the history, statistics and
// detail endpoints have data during frontend development.
func main() {
	log.Println("🚀 Starting analysis seeding...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	vocabulary := services.DefaultVocabulary()
	if cfg.Skills.VocabularyFile != "" {
		vocabulary, err = services.LoadVocabulary(cfg.Skills.VocabularyFile)
		if err != nil {
			log.Fatalf("❌ Failed to load vocabulary: %v", err)
		}
	}

	extractor, err := services.NewSkillExtractor(vocabulary, services.MatchStrategy(cfg.Skills.MatchStrategy))
	if err != nil {
		log.Fatalf("❌ Failed to initialize skill extractor: %v", err)
	}

	matcher := services.NewMatchService()
	repo := repositories.NewAnalysisRepository(db)

	samples := []struct {
		Name           string
		ResumeText     string
		JobDescription string
	}{
		{
			Name: "Backend engineer vs platform role",
			ResumeText: "Backend engineer with five years of Go and Python. " +
				"Built REST APIs on PostgreSQL and Redis, deployed with Docker and Kubernetes on AWS.",
			JobDescription: "We are hiring a platform engineer comfortable with Go, Kubernetes, " +
				"Terraform, AWS and PostgreSQL.",
		},
		{
			Name: "Frontend developer vs fullstack role",
			ResumeText: "Frontend developer working with React, TypeScript, HTML and CSS. " +
				"Some exposure to Node.js and GraphQL.",
			JobDescription: "Fullstack role: React, Node.js, MongoDB, Docker and CI/CD experience required.",
		},
		{
			Name: "Data analyst vs ML role",
			ResumeText: "Data analyst fluent in SQL, Excel, Tableau and Python. " +
				"Pandas and NumPy for reporting pipelines.",
			JobDescription: "Machine learning engineer: Python, TensorFlow, PyTorch, SQL and Spark.",
		},
		{
			Name:           "Career changer vs junior role",
			ResumeText:     "Recent bootcamp graduate with JavaScript, HTML and CSS projects.",
			JobDescription: "Junior web developer: JavaScript, React, Git and Agile teamwork.",
		},
	}

	successCount := 0
	failCount := 0

	for _, sample := range samples {
		log.Printf("\n📄 Seeding: %s", sample.Name)

		resumeSkills := extractor.ExtractSkills(sample.ResumeText)
		jdSkills := extractor.ExtractSkills(sample.JobDescription)
		log.Printf("   📖 Extracted %d resume skills, %d jd skills", len(resumeSkills), len(jdSkills))

		result := matcher.CalculateMatch(resumeSkills, jdSkills)

		analysis := &models.Analysis{
			ResumeText:     sample.ResumeText,
			ResumeSkills:   resumeSkills,
			JobDescription: sample.JobDescription,
			JDSkills:       jdSkills,
			MatchedSkills:  result.MatchedSkills,
			MissingSkills:  result.MissingSkills,
			Score:          result.Score,
		}

		if err := repo.Create(analysis); err != nil {
			log.Printf("   ❌ Failed to store analysis: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Stored %s with score %.1f%%", analysis.ID, result.Score)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Seeding Summary:")
	log.Printf("   ✅ Successful: %d analyses", successCount)
	log.Printf("   ❌ Failed: %d analyses", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some analyses failed to seed. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All sample analyses seeded successfully!")
}
