package matcher

import "strings"

// Similarity bands, highest first
const (
	simExact        = 1.0
	simContains     = 0.9
	simTokenBase    = 0.7
	simTokenSpan    = 0.2
	simSameCluster  = 0.85
	simRelatedTerm  = 0.75
	minClusterWord  = 4
	shortTermLength = 3
)

// synonymCluster groups topic terms that should be treated as related even
// when they share no words
type synonymCluster struct {
	key   string
	terms []string
	words map[string]bool
}

// genericWords are too broad to count as a related-term hit on their own
var genericWords = map[string]bool{
	"science": true, "sciences": true, "systems": true, "research": true,
	"engineering": true, "applied": true, "theoretical": true,
	"academic": true, "scientific": true, "analysis": true,
}

func newCluster(key string, terms ...string) synonymCluster {
	c := synonymCluster{key: key, terms: terms, words: make(map[string]bool)}
	for _, phrase := range append([]string{key}, terms...) {
		for _, w := range strings.Fields(phrase) {
			if len(w) >= minClusterWord && !genericWords[w] {
				c.words[w] = true
			}
		}
	}
	return c
}

var synonymClusters = []synonymCluster{
	// computer science
	newCluster("artificial intelligence", "ai", "machine learning", "deep learning", "neural networks"),
	newCluster("machine learning", "ml", "ai", "artificial intelligence", "data science"),
	newCluster("computer science", "cs", "computing", "software engineering"),
	newCluster("data science", "analytics", "statistics", "machine learning", "big data"),
	newCluster("natural language processing", "nlp", "computational linguistics", "text mining", "language models"),
	newCluster("computer vision", "image processing", "object detection", "image recognition"),
	newCluster("cybersecurity", "security", "cryptography", "privacy"),
	// engineering
	newCluster("robotics", "autonomous systems", "mechatronics", "control systems"),
	newCluster("engineering", "mechanical", "electrical", "civil", "biomedical"),
	// biology
	newCluster("neuroscience", "neural", "brain", "cognitive science", "neuropsychology"),
	newCluster("biology", "biological", "life sciences", "biotechnology", "genetics"),
	newCluster("chemistry", "biochemistry", "chemical engineering", "materials science"),
	// physics
	newCluster("physics", "quantum", "theoretical physics", "applied physics", "astrophysics"),
	// psychology
	newCluster("psychology", "behavioral", "cognitive", "mental health", "psychiatry"),
	// research and tooling
	newCluster("research", "academic research", "scientific research", "investigation"),
	newCluster("python", "programming", "coding", "software development"),
	newCluster("statistics", "statistical analysis", "data analysis", "r"),
}

// Similarity estimates how close two free-text labels are, from 0.0 to 1.0.
// Comparison is case-insensitive and ignores surrounding whitespace. The
// first rule that applies decides the result: exact match, containment,
// word overlap, then synonym clusters.
func Similarity(a, b string) float64 {
	s1 := normalize(a)
	s2 := normalize(b)
	if s1 == "" || s2 == "" {
		return 0
	}

	if s1 == s2 {
		return simExact
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return simContains
	}

	words1 := wordSet(s1)
	words2 := wordSet(s2)
	common := 0
	for w := range words1 {
		if words2[w] {
			common++
		}
	}
	if common > 0 {
		return simTokenBase + float64(common)/float64(max(len(words1), len(words2)))*simTokenSpan
	}

	return clusterSimilarity(s1, s2)
}

func clusterSimilarity(s1, s2 string) float64 {
	best := 0.0
	for i := range synonymClusters {
		c := &synonymClusters[i]
		t1, t2 := c.touches(s1), c.touches(s2)
		if t1 && t2 {
			return simSameCluster
		}
		if (t1 && c.sharesWord(s2)) || (t2 && c.sharesWord(s1)) {
			best = simRelatedTerm
		}
	}
	return best
}

// touches reports whether s mentions the cluster key or any of its terms
func (c *synonymCluster) touches(s string) bool {
	if containsTerm(s, c.key) {
		return true
	}
	for _, t := range c.terms {
		if containsTerm(s, t) {
			return true
		}
	}
	return false
}

// sharesWord reports whether s literally contains one of the cluster's
// distinguishing words
func (c *synonymCluster) sharesWord(s string) bool {
	for _, w := range tokens(s) {
		if c.words[w] {
			return true
		}
	}
	return false
}

// containsTerm matches short abbreviations ("ai", "cs") only as whole words
// so that "brain" does not count as mentioning "ai"
func containsTerm(s, term string) bool {
	if len(term) < shortTermLength {
		for _, w := range tokens(s) {
			if w == term {
				return true
			}
		}
		return false
	}
	return strings.Contains(s, term)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func wordSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// tokens splits on whitespace and strips surrounding punctuation
func tokens(s string) []string {
	fields := strings.Fields(s)
	out := fields[:0:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:()[]\"'/")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
