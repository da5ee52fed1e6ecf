package domain

import "fmt"

// Item is an article/quantity pair. It serves both as a request entry and as a
// fulfillment entry in reserve responses, matching the wire format.
type Item struct {
	ArticleName string `json:"article_name"`
	Quantity    int    `json:"quantity"`
}

func (i Item) String() string {
	return fmt.Sprintf("%s (%d)", i.ArticleName, i.Quantity)
}

// Deduplicate merges entries sharing an article name by summing their
// quantities. Order of first appearance is preserved.
func Deduplicate(items []Item) []Item {
	index := make(map[string]int, len(items))
	result := make([]Item, 0, len(items))

	for _, item := range items {
		if pos, ok := index[item.ArticleName]; ok {
			result[pos].Quantity += item.Quantity
			continue
		}
		index[item.ArticleName] = len(result)
		result = append(result, item)
	}

	return result
}

// TotalQuantity sums the quantities of a batch.
func TotalQuantity(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
