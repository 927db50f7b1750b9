package main

import "github.com/fwojciec/sectiongrid"

// demoSections returns the restaurant roles shown when no files are given.
func demoSections() []sectiongrid.Section {
	return []sectiongrid.Section{
		section("Management",
			"FOH management", "Bar management", "Kitchen management", "Baking management"),
		section("Front of house",
			"Bartending", "Barista", "Serving", "Host/Hostess", "Sommelier", "Cashier",
			"Bar backing", "Bussing", "Bouncer or security", "Coat check",
			"Expo / Food runner", "Garde manger / salad"),
		section("Back of house",
			"Prepping", "Hot line cook", "Pastry", "Baking", "Sushi", "Dishwashing"),
	}
}

func section(header string, names ...string) sectiongrid.Section {
	items := make([]sectiongrid.Item, len(names))
	for i, name := range names {
		items[i] = sectiongrid.Item{Name: name}
	}
	return sectiongrid.Section{Header: header, Items: items}
}
