package collection

import "fmt"

// sampleGroups seed the document shown when no file is given.
var sampleGroups = []struct {
	name  string
	items []string
}{
	{"Fruit", []string{"Apple", "Apricot", "Banana", "Blueberry", "Cherry", "Fig", "Grape", "Kiwi", "Lemon", "Mango", "Orange", "Papaya", "Peach", "Pear", "Plum"}},
	{"Vegetables", []string{"Artichoke", "Beetroot", "Broccoli", "Carrot", "Celery", "Fennel", "Kale", "Leek", "Onion", "Parsnip", "Radish", "Spinach"}},
	{"Herbs", []string{"Basil", "Chive", "Coriander", "Dill", "Mint", "Oregano", "Parsley", "Rosemary", "Sage", "Thyme"}},
}

// SampleDocument returns a grouped document with headers and one disabled
// item per group.
func SampleDocument() *Document {
	doc := &Document{Title: "Produce"}
	for _, g := range sampleGroups {
		doc.Items = append(doc.Items, Record{ID: "group-" + g.name, Label: g.name, Header: true})
		for i, name := range g.items {
			doc.Items = append(doc.Items, Record{
				ID:       fmt.Sprintf("%s-%d", g.name, i+1),
				Label:    name,
				Disabled: i == len(g.items)-1,
			})
		}
	}
	return doc
}
