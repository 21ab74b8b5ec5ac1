package models

// ResearchArea is a well-known research topic offered as a suggestion
type ResearchArea struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ResearchAreas is the catalog of suggested research topics
var ResearchAreas = []ResearchArea{
	{Name: "Artificial Intelligence", Category: "Computer Science"},
	{Name: "Machine Learning", Category: "Computer Science"},
	{Name: "Data Science", Category: "Computer Science"},
	{Name: "Cybersecurity", Category: "Computer Science"},
	{Name: "Software Engineering", Category: "Computer Science"},
	{Name: "Human-Computer Interaction", Category: "Computer Science"},
	{Name: "Computer Vision", Category: "Computer Science"},
	{Name: "Natural Language Processing", Category: "Computer Science"},
	{Name: "Robotics", Category: "Engineering"},
	{Name: "Biomedical Engineering", Category: "Engineering"},
	{Name: "Environmental Engineering", Category: "Engineering"},
	{Name: "Materials Science", Category: "Engineering"},
	{Name: "Cancer Research", Category: "Biology"},
	{Name: "Genetics", Category: "Biology"},
	{Name: "Neuroscience", Category: "Biology"},
	{Name: "Biochemistry", Category: "Biology"},
	{Name: "Climate Change", Category: "Environmental Science"},
	{Name: "Renewable Energy", Category: "Environmental Science"},
	{Name: "Quantum Computing", Category: "Physics"},
	{Name: "Astrophysics", Category: "Physics"},
	{Name: "Behavioral Psychology", Category: "Psychology"},
	{Name: "Cognitive Science", Category: "Psychology"},
	{Name: "Economics", Category: "Social Sciences"},
	{Name: "Political Science", Category: "Social Sciences"},
}

// Skills is the catalog of suggested skills
var Skills = []string{
	"Python", "R", "JavaScript", "Java", "C++", "MATLAB", "SQL",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy",
	"Git", "Docker", "AWS", "Azure", "Linux", "Statistical Analysis",
	"Data Visualization", "Research Writing", "Laboratory Techniques",
	"Project Management", "Team Leadership", "Public Speaking",
}

// ResearchAreasByCategory groups the catalog preserving catalog order
func ResearchAreasByCategory() (categories []string, areas map[string][]string) {
	areas = make(map[string][]string)
	for _, ra := range ResearchAreas {
		if _, ok := areas[ra.Category]; !ok {
			categories = append(categories, ra.Category)
		}
		areas[ra.Category] = append(areas[ra.Category], ra.Name)
	}
	return categories, areas
}
