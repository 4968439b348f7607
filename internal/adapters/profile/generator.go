package profile

import (
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/vncsmyrnk/wagle/internal/core/domain"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
)

var (
	adjectives = []string{"Excited", "Hungry", "Sleepy", "Brave", "Clever", "Happy"}
	animals    = []string{"🐶 Puppy", "🐱 Kitty", "🐹 Hamster", "🐰 Bunny", "🦊 Fox", "🐼 Panda", "🐯 Tiger"}
	colors     = []string{"bg-red-100", "bg-orange-100", "bg-yellow-100", "bg-green-100", "bg-blue-100", "bg-purple-100"}
)

// Generator hands out anonymous "adjective animal" nicknames.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewGenerator returns a generator; seed 0 picks a random seed.
func NewGenerator(seed uint64) ports.ProfileGenerator {
	return &Generator{
		faker: gofakeit.New(seed),
	}
}

func (g *Generator) Generate() domain.Profile {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.Profile{
		Name:  g.faker.RandomString(adjectives) + " " + g.faker.RandomString(animals),
		Color: g.faker.RandomString(colors),
	}
}
