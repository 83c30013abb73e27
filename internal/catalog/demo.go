package catalog

import "combobox/internal/domain"

// Frameworks is the demo dataset of technology names
func Frameworks() []domain.Item {
	return []domain.Item{
		{Name: "React", Value: "react", Keywords: []string{"web", "frontend", "js", "library"}},
		{Name: "Vue.js", Value: "vue", Keywords: []string{"web", "frontend", "js", "framework"}},
		{Name: "Angular", Value: "angular", Keywords: []string{"web", "frontend", "ts", "framework"}},
		{Name: "Svelte", Value: "svelte", Keywords: []string{"web", "frontend", "compiler"}},
		{Name: "Next.js", Value: "nextjs", Keywords: []string{"web", "react", "backend", "fullstack"}},
		{Name: "Python", Value: "python", Keywords: []string{"backend", "scripting", "ai", "data"}},
		{Name: "Reflex", Value: "reflex", Keywords: []string{"python", "web", "fullstack", "ui"}},
		{Name: "Django", Value: "django", Keywords: []string{"python", "backend", "web", "framework"}},
		{Name: "FastAPI", Value: "fastapi", Keywords: []string{"python", "backend", "api", "async"}},
		{Name: "Tailwind CSS", Value: "tailwind", Keywords: []string{"css", "styling", "utility"}},
		{Name: "TypeScript", Value: "typescript", Keywords: []string{"js", "types", "microsoft"}},
		{Name: "Docker", Value: "docker", Keywords: []string{"ops", "containers", "deployment"}},
		{Name: "Kubernetes", Value: "k8s", Keywords: []string{"ops", "orchestration", "cloud"}},
		{Name: "PostgreSQL", Value: "postgres", Keywords: []string{"db", "sql", "database"}},
		{Name: "Redis", Value: "redis", Keywords: []string{"db", "cache", "kv"}},
	}
}
