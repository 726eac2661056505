// internal/ranking/corpus.go
package ranking

// Candidate is one entry in the content corpus.
type Candidate struct {
	Text     string
	Category string
}

// DefaultCorpus returns the static content table the service ranks against.
// The set is fixed at process start and shared read-only across requests.
func DefaultCorpus() []Candidate {
	return []Candidate{
		{Text: "Machine learning algorithms for prediction", Category: "ML"},
		{Text: "Deep learning neural networks", Category: "AI"},
		{Text: "Natural language processing techniques", Category: "NLP"},
		{Text: "Computer vision and image recognition", Category: "CV"},
		{Text: "Data preprocessing and cleaning", Category: "Data"},
		{Text: "Feature engineering best practices", Category: "Data"},
		{Text: "Model evaluation and metrics", Category: "ML"},
		{Text: "Deployment strategies for ML models", Category: "MLOps"},
		{Text: "Kubernetes orchestration patterns", Category: "DevOps"},
		{Text: "Docker containerization guide", Category: "DevOps"},
		{Text: "CI/CD pipeline automation", Category: "DevOps"},
		{Text: "Cloud infrastructure management", Category: "Cloud"},
		{Text: "API design and best practices", Category: "API"},
		{Text: "Microservices architecture patterns", Category: "Architecture"},
		{Text: "Database optimization techniques", Category: "Database"},
	}
}

// CategoryCounts tallies candidates per category.
func CategoryCounts(corpus []Candidate) map[string]int {
	counts := make(map[string]int)
	for _, candidate := range corpus {
		counts[candidate.Category]++
	}
	return counts
}
