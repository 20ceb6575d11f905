package pricing

// Module is a purchasable AI-agent capability. The catalog is static
// configuration: modules are never created or destroyed at runtime.
type Module struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"` // monthly, EUR
	Benefits    []string `json:"benefits"`
	Description string   `json:"description"`
}

// DiscountTier maps a minimum selected-module count to a percentage
// discount. Exactly one tier applies to a quote: the richest one the
// count qualifies for. Tiers are not cumulative.
type DiscountTier struct {
	ModuleCount int     `json:"moduleCount"`
	Percent     float64 `json:"percent"`
}

// Catalog holds the module definitions and discount tiers a quote is
// priced against.
type Catalog struct {
	Modules []Module
	Tiers   []DiscountTier
}

// DefaultCatalog is the AIDevelo.AI storefront catalog.
var DefaultCatalog = Catalog{
	Modules: []Module{
		{
			ID:    "phone",
			Name:  "AI Phone Agent",
			Price: 79,
			Benefits: []string{
				"24/7 call answering",
				"Appointment booking over the phone",
				"Natural multilingual voice",
			},
			Description: "Answers inbound calls, qualifies callers and books appointments without hold time.",
		},
		{
			ID:    "chat",
			Name:  "AI Chat Agent",
			Price: 49,
			Benefits: []string{
				"Instant website responses",
				"Lead capture built in",
				"Hands off to a human when needed",
			},
			Description: "Lives on your website, answers visitor questions and captures leads around the clock.",
		},
		{
			ID:    "social",
			Name:  "AI Social Media Agent",
			Price: 59,
			Benefits: []string{
				"Replies to DMs and comments",
				"Consistent brand voice",
				"Works across platforms",
			},
			Description: "Keeps your social inboxes answered so conversations never go cold.",
		},
	},
	Tiers: []DiscountTier{
		{ModuleCount: 2, Percent: 10},
		{ModuleCount: 3, Percent: 15},
	},
}

// ModuleByID resolves a module identifier against the catalog.
func (c Catalog) ModuleByID(id string) (Module, bool) {
	for _, m := range c.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}
