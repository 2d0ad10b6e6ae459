package services

import "github.com/nate-han123/Mind-Scroll/models"

// InterestCategories is the fixed topic vocabulary for the content feed.
var InterestCategories = []string{
	"Science",
	"Art",
	"Technology",
	"Psychology",
	"History",
	"Literature",
	"Design",
	"Philosophy",
	"Mathematics",
	"Music",
}

// ValidInterest reports vocabulary membership.
func ValidInterest(tag string) bool {
	for _, c := range InterestCategories {
		if c == tag {
			return true
		}
	}
	return false
}

// FallbackContent is the bundled demo catalog shown when the
// recommendations API is unavailable.
var FallbackContent = []models.VideoItem{
	{
		ID:          models.IntID(1),
		Title:       "The Beauty of Chaos Theory",
		Category:    "Science",
		Description: "Explore how small changes can lead to massive effects in complex systems",
		Thumbnail:   "/videos/science1.jpg",
		VideoURL:    "/videos/science1.mp4",
		Duration:    "3:45",
		Views:       "2.3M",
		Likes:       "156K",
	},
	{
		ID:          models.IntID(2),
		Title:       "How Art Changes the Brain",
		Category:    "Art",
		Description: "Discover the neuroscience behind creativity and artistic expression",
		Thumbnail:   "/videos/art1.jpg",
		VideoURL:    "/videos/art1.mp4",
		Duration:    "4:12",
		Views:       "1.8M",
		Likes:       "98K",
	},
	{
		ID:          models.IntID(3),
		Title:       "The Psychology of Motivation",
		Category:    "Psychology",
		Description: "Understanding what drives human behavior and decision-making",
		Thumbnail:   "/videos/psy1.jpg",
		VideoURL:    "/videos/psy1.mp4",
		Duration:    "5:30",
		Views:       "3.1M",
		Likes:       "234K",
	},
	{
		ID:          models.IntID(4),
		Title:       "Quantum Computing Explained",
		Category:    "Technology",
		Description: "A beginner's guide to the revolutionary world of quantum computing",
		Thumbnail:   "/videos/tech1.jpg",
		VideoURL:    "/videos/tech1.mp4",
		Duration:    "6:15",
		Views:       "4.2M",
		Likes:       "312K",
	},
	{
		ID:          models.IntID(5),
		Title:       "The Renaissance Revolution",
		Category:    "History",
		Description: "How the Renaissance changed the world forever",
		Thumbnail:   "/videos/history1.jpg",
		VideoURL:    "/videos/history1.mp4",
		Duration:    "7:20",
		Views:       "1.5M",
		Likes:       "87K",
	},
	{
		ID:          models.IntID(6),
		Title:       "Modern Literature's Hidden Gems",
		Category:    "Literature",
		Description: "Discovering contemporary works that deserve more attention",
		Thumbnail:   "/videos/lit1.jpg",
		VideoURL:    "/videos/lit1.mp4",
		Duration:    "4:45",
		Views:       "890K",
		Likes:       "45K",
	},
	{
		ID:          models.IntID(7),
		Title:       "Design Thinking in Action",
		Category:    "Design",
		Description: "How design thinking solves real-world problems",
		Thumbnail:   "/videos/design1.jpg",
		VideoURL:    "/videos/design1.mp4",
		Duration:    "5:50",
		Views:       "2.1M",
		Likes:       "178K",
	},
	{
		ID:          models.IntID(8),
		Title:       "The Future of AI Ethics",
		Category:    "Technology",
		Description: "Exploring the moral implications of artificial intelligence",
		Thumbnail:   "/videos/tech2.jpg",
		VideoURL:    "/videos/tech2.mp4",
		Duration:    "8:30",
		Views:       "3.7M",
		Likes:       "289K",
	},
}

// FilterByInterests keeps only catalog items whose category is one of the
// selected interests.
func FilterByInterests(items []models.VideoItem, interests []string) []models.VideoItem {
	selected := make(map[string]bool, len(interests))
	for _, t := range interests {
		selected[t] = true
	}
	out := make([]models.VideoItem, 0, len(items))
	for _, it := range items {
		if selected[it.Category] {
			out = append(out, it)
		}
	}
	return out
}
