package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
)

var seedNamespace = uuid.MustParse("6f1c2f8e-3b8a-4d52-9a0e-5d7c1b7e2a10")

func seedCommentID(topicID domain.TopicID, n int) uuid.UUID {
	return uuid.NewSHA1(seedNamespace, []byte{byte(topicID >> 8), byte(topicID), byte(n)})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}

// SeedTopics is the built-in room list.
func SeedTopics() []domain.Topic {
	return []domain.Topic{
		{
			ID:           101,
			Title:        "🍱 October lunch menu world cup",
			Body:         "Friends! What should the October special be?\nPick the menu you want most!",
			Kind:         domain.KindSingleChoiceWithDiscussion,
			Labels:       []string{"HOT", "lunch"},
			Participants: 128,
			Comments:     45,
			Status:       domain.StatusOpen,
			Participated: true,
			Color:        "bg-orange-100",
			Icon:         "🍛",
			EndDate:      "10.25",
			CreatedAt:    date(2025, time.October, 1),
			Questions: []domain.Question{
				{
					ID:      "q1",
					Prompt:  "Pick just one!",
					Options: []string{"Pork cutlet", "Spaghetti", "Bibimbap"},
					Tallies: []int{52, 38, 15},
				},
			},
			PriorBallot: domain.Ballot{"q1": "Pork cutlet"},
		},
		{
			ID:           102,
			Title:        "👕 Sports day class T-shirt",
			Body:         "Are soccer kits too common? What about pajamas?\nPick a great T-shirt for our class!",
			Kind:         domain.KindSingleChoice,
			Labels:       []string{"3rd grade", "sports day"},
			Participants: 340,
			Comments:     0,
			Status:       domain.StatusOpen,
			Participated: false,
			Color:        "bg-blue-100",
			Icon:         "⚽️",
			EndDate:      "10.30",
			CreatedAt:    date(2025, time.October, 3),
			Questions: []domain.Question{
				{
					ID:      "q1",
					Prompt:  "Which T-shirt should we wear?",
					Options: []string{"Soccer kit", "Pajamas", "Superhero"},
					Tallies: []int{120, 160, 60},
				},
			},
		},
		{
			ID:           103,
			Title:        "📐 How was the math exam?",
			Body:         "Wasn't the last written question really hard?\nLet's talk about how everyone solved it ㅠㅠ",
			Kind:         domain.KindDiscussion,
			Labels:       []string{"meltdown", "exam"},
			Participants: 82,
			Comments:     156,
			Status:       domain.StatusOpen,
			Participated: true,
			Color:        "bg-purple-100",
			Icon:         "✏️",
			EndDate:      "always",
			CreatedAt:    date(2025, time.October, 5),
		},
		{
			ID:           104,
			Title:        "📚 [Closed] September mock exam review",
			Body:         "Great job on the exam, everyone!",
			Kind:         domain.KindDiscussion,
			Labels:       []string{"past stories"},
			Participants: 56,
			Comments:     89,
			Status:       domain.StatusClosed,
			Participated: true,
			Color:        "bg-gray-200",
			Icon:         "💯",
			EndDate:      "09.10",
			CreatedAt:    date(2025, time.September, 1),
		},
		{
			ID:           105,
			Title:        "🎪 School festival planning",
			Body:         "The festival is coming!\nAnswer all four questions and meet friends who think like you.",
			Kind:         domain.KindMultiChoiceWithDiscussion,
			Labels:       []string{"HOT", "festival"},
			Participants: 97,
			Comments:     4,
			Status:       domain.StatusOpen,
			Participated: false,
			Color:        "bg-green-100",
			Icon:         "🎉",
			EndDate:      "11.05",
			CreatedAt:    date(2025, time.October, 8),
			Questions: []domain.Question{
				{ID: "q1", Prompt: "Class booth?", Options: []string{"Cafe", "Haunted house", "Photo studio"}, Tallies: []int{40, 35, 22}},
				{ID: "q2", Prompt: "Stage show?", Options: []string{"Dance", "Band"}, Tallies: []int{51, 46}},
				{ID: "q3", Prompt: "Festival day?", Options: []string{"Friday", "Saturday"}, Tallies: []int{70, 27}},
				{ID: "q4", Prompt: "Theme color?", Options: []string{"Red", "Blue", "Green", "Yellow"}, Tallies: []int{20, 30, 25, 22}},
			},
		},
	}
}

// SeedComments holds the comments each room starts with, newest first.
func SeedComments() map[domain.TopicID][]domain.SeedComment {
	return map[domain.TopicID][]domain.SeedComment{
		101: {
			{ID: seedCommentID(101, 1), Ballot: domain.Ballot{"q1": "Pork cutlet"}, Body: "Pork cutlet is the best! Lots of sauce please 😋", Likes: 12, Age: 15 * time.Minute},
			{ID: seedCommentID(101, 2), Ballot: domain.Ballot{"q1": "Spaghetti"}, Body: "I just love noodles.. slurp", Likes: 5, Age: 10 * time.Minute},
		},
		103: {
			{ID: seedCommentID(103, 1), Body: "The last question took me twenty minutes...", Likes: 9, Age: 30 * time.Minute},
			{ID: seedCommentID(103, 2), Body: "Did anyone get 3√2 for number 5?", Likes: 14, Age: time.Hour},
		},
		104: {
			{ID: seedCommentID(104, 1), Body: "English listening was faster than usual", Likes: 21, Age: 36 * time.Hour},
		},
		105: {
			{ID: seedCommentID(105, 1), Ballot: domain.Ballot{"q1": "Cafe", "q2": "Dance", "q3": "Friday", "q4": "Red"}, Body: "A cafe with a dance show at the end!", Likes: 3, Age: 5 * time.Minute},
			{ID: seedCommentID(105, 2), Ballot: domain.Ballot{"q1": "Haunted house", "q2": "Band", "q3": "Saturday", "q4": "Blue"}, Body: "Haunted house or nothing 👻", Likes: 8, Age: 20 * time.Minute},
			{ID: seedCommentID(105, 3), Ballot: domain.Ballot{"q1": "Cafe", "q2": "Band", "q3": "Friday", "q4": "Green"}, Body: "Band on stage, coffee in the classroom", Likes: 8, Age: 40 * time.Minute},
			{ID: seedCommentID(105, 4), Ballot: domain.Ballot{"q1": "Photo studio"}, Body: "Photo studio! (still deciding the rest)", Likes: 1, Age: 2 * time.Hour},
		},
	}
}
