package model

// CategoryID identifies one entry of the fixed category catalog.
type CategoryID string

// The full catalog of category ids.
const (
	CategoryFood          CategoryID = "food"
	CategoryRent          CategoryID = "rent"
	CategoryTransport     CategoryID = "transport"
	CategoryBills         CategoryID = "bills"
	CategoryShopping      CategoryID = "shopping"
	CategorySalary        CategoryID = "salary"
	CategoryEntertainment CategoryID = "entertainment"
	CategoryHealth        CategoryID = "health"
	CategoryOther         CategoryID = "other"
)

// Category is a fixed classification tag: static reference data, not
// user-editable at this layer.
type Category struct {
	ID    CategoryID
	Name  string
	Icon  string
	Color string
}

// Categories is the static catalog, in display order. The last entry is the
// catch-all "other" category.
var Categories = []Category{
	{ID: CategoryFood, Name: "Food", Icon: "🍔", Color: "#FB923C"},
	{ID: CategoryRent, Name: "Rent", Icon: "🏠", Color: "#3B82F6"},
	{ID: CategoryTransport, Name: "Transport", Icon: "🚗", Color: "#16A34A"},
	{ID: CategoryBills, Name: "Bills", Icon: "📄", Color: "#FACC15"},
	{ID: CategoryShopping, Name: "Shopping", Icon: "🛍️", Color: "#EC4899"},
	{ID: CategorySalary, Name: "Salary", Icon: "💰", Color: "#22C55E"},
	{ID: CategoryEntertainment, Name: "Entertainment", Icon: "🎬", Color: "#9333EA"},
	{ID: CategoryHealth, Name: "Health", Icon: "⚕️", Color: "#EF4444"},
	{ID: CategoryOther, Name: "Other", Icon: "📌", Color: "#64748B"},
}

// CategoryByID looks up a category by id, falling back to the "other"
// category when the id is unknown. Lookups never fail.
func CategoryByID(id CategoryID) Category {
	for _, cat := range Categories {
		if cat.ID == id {
			return cat
		}
	}
	return Categories[len(Categories)-1]
}

// KnownCategory reports whether id names an entry of the catalog.
func KnownCategory(id CategoryID) bool {
	for _, cat := range Categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}
