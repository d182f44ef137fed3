package keywords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadVocabulary reads a skill vocabulary file: one phrase per line, blank
// lines and lines starting with # ignored.
func LoadVocabulary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var phrases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no skills", path)
	}
	return phrases, nil
}

// DefaultVocabulary returns the curated skill dictionary shipped with the
// analyzer. Deployments can replace it via configuration; the extractor treats
// whatever vocabulary it is given as read-only.
func DefaultVocabulary() []string {
	return []string{
		// Programming languages
		"python", "java", "c++", "c#", "c", "javascript", "typescript", "go",
		"rust", "php", "ruby", "swift", "kotlin",

		// Web development
		"html", "css", "react", "angular", "vue.js", "nodejs", "express.js",
		"django", "flask", "asp.net", "restful apis", "graphql", "webpack",

		// Mobile development
		"ios", "android", "react native", "flutter", "swiftui", "xamarin",

		// Databases
		"sql", "mysql", "postgresql", "mongodb", "redis", "cassandra",
		"sqlite", "nosql",

		// Cloud & DevOps
		"aws", "azure", "google cloud", "gcp", "docker", "kubernetes",
		"terraform", "ansible", "jenkins", "ci/cd", "serverless",
		"microservices", "aws lambda", "azure functions",

		// Data science & machine learning
		"pandas", "numpy", "scipy", "scikit-learn", "tensorflow", "pytorch",
		"keras", "machine learning", "deep learning", "data analysis",
		"data visualization", "matplotlib", "jupyter", "spark", "hadoop",

		// Software engineering & design
		"agile", "scrum", "git", "svn", "data structures", "algorithms",
		"design patterns", "software architecture",

		// Business & soft skills
		"project management", "product management", "leadership",
		"communication", "teamwork", "problem solving", "critical thinking",
		"creativity", "adaptability", "time management", "negotiation",
		"mentoring", "public speaking", "strategic planning",
		"business development", "sales", "customer service", "ux/ui design",
		"marketing", "seo", "copywriting", "finance", "recruiting",
		"consulting",
	}
}
