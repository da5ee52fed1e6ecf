package worker

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

var (
	materials = []string{
		"Steel", "Wooden", "Concrete", "Plastic", "Cotton", "Granite",
		"Rubber", "Metal", "Soft", "Fresh", "Frozen",
	}
	products = []string{
		"Chair", "Car", "Computer", "Keyboard", "Mouse", "Bike", "Ball",
		"Gloves", "Pants", "Shirt", "Table", "Shoes", "Hat", "Towels",
		"Soap", "Tuna", "Chicken", "Fish", "Cheese", "Bacon", "Pizza",
		"Salad", "Sausages", "Chips",
	}
)

// ItemFaker produces demo batches: article names drawn from a fixed
// material/product catalog, quantities between 1 and 20.
type ItemFaker struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewItemFaker(seed uint64) *ItemFaker {
	return &ItemFaker{rand: rand.New(rand.NewPCG(seed, seed))}
}

// Batch generates between 10 and 20 items. Article names may repeat within
// one batch; deduplication is the receiving node's job.
func (f *ItemFaker) Batch() []domain.Item {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 10 + f.rand.IntN(10)
	items := make([]domain.Item, count)
	for i := range items {
		items[i] = domain.Item{
			ArticleName: fmt.Sprintf("%s %s",
				materials[f.rand.IntN(len(materials))],
				products[f.rand.IntN(len(products))]),
			Quantity: 1 + f.rand.IntN(20),
		}
	}
	return items
}
